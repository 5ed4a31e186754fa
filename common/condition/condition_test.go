// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package condition

import (
	"errors"
	"fmt"
	"testing"

	"github.com/panoptisDev/statusvalue/common/statusvalue"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCondition_ZeroValue_IsGenericSuccess(t *testing.T) {
	var c Condition
	require.True(t, c.OK())
	require.Equal(t, 0, c.Code())
	require.Equal(t, Generic(), c.Category())
	require.Equal(t, "success", c.Message())
	require.NoError(t, c.Err())
	require.Equal(t, Make(Success), c)
}

func TestCondition_Make_UsesGenericCategory(t *testing.T) {
	c := Make(InvalidArgument)
	require.False(t, c.OK())
	require.Equal(t, int(InvalidArgument), c.Code())
	require.Equal(t, "invalid argument", c.Message())
	require.Equal(t, "generic:1 invalid argument", c.String())
}

func TestCondition_New_WithNilCategoryIsGeneric(t *testing.T) {
	require.Equal(t, Make(ResultOutOfRange), New(int(ResultOutOfRange), nil))
	require.Equal(t, "numerical result out of range", New(2, nil).Message())
}

func TestCondition_Message_IsProvidedByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	category := NewMockCategory(ctrl)
	category.EXPECT().Message(5).Return("disk full")
	category.EXPECT().Name().Return("storage")

	c := New(5, category)
	require.Equal(t, "disk full", c.Message())
	require.Equal(t, "storage", c.Category().Name())
}

func TestCondition_String_CombinesNameCodeAndMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	category := NewMockCategory(ctrl)
	gomock.InOrder(
		category.EXPECT().Name().Return("storage"),
		category.EXPECT().Message(5).Return("disk full"),
	)

	require.Equal(t, "storage:5 disk full", New(5, category).String())
}

func TestCondition_OK_DoesNotConsultCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	category := NewMockCategory(ctrl)

	require.True(t, New(0, category).OK())
	require.False(t, New(1, category).OK())
	require.NoError(t, New(0, category).Err())
}

func TestCondition_Err_MatchesEqualConditions(t *testing.T) {
	err := Make(InvalidArgument).Err()
	require.Error(t, err)
	require.Equal(t, "invalid argument", err.Error())
	require.ErrorIs(t, err, Make(InvalidArgument).Err())
	require.ErrorIs(t, fmt.Errorf("parsing: %w", err), Make(InvalidArgument).Err())
	require.NotErrorIs(t, err, Make(ResultOutOfRange).Err())
	require.NotErrorIs(t, err, errors.New("invalid argument"))
}

func TestCondition_Err_DistinguishesCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	category := NewMockCategory(ctrl)

	require.NotErrorIs(t, New(1, category).Err(), Make(InvalidArgument).Err())
	require.ErrorIs(t, New(1, category).Err(), New(1, category).Err())
}

func TestCondition_CanBeUsedAsStatus(t *testing.T) {
	sv := statusvalue.New[Condition, int](Make(InvalidArgument))
	require.False(t, sv.HasValue())
	require.Equal(t, "invalid argument", sv.Status().Message())
	require.Equal(t, "status: generic:1 invalid argument, no value", sv.String())

	sv = statusvalue.With(Condition{}, 42)
	require.True(t, sv.Status().OK())
	require.Equal(t, 42, sv.Value())
}

func TestCondition_StatusValueNeverConsultsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	category := NewMockCategory(ctrl)
	status := New(3, category)

	sv1 := statusvalue.With(status, "payload")
	sv2 := sv1.Take()
	require.Equal(t, "payload", sv2.TakeValue())
	require.Equal(t, status, sv1.Status())
	require.Equal(t, status, sv2.Status())
}

func TestGeneric_UnknownCodeIsDescribed(t *testing.T) {
	require.Equal(t, "unknown condition 99", Generic().Message(99))
	require.Equal(t, "generic", Generic().Name())
}

// namedCategory is a category whose type cannot be compared using ==.
type namedCategory struct {
	names []string
}

func (c namedCategory) Name() string {
	return c.names[0]
}

func (c namedCategory) Message(code int) string {
	return c.names[code]
}

func TestCondition_Equal_HandlesNonComparableCategories(t *testing.T) {
	c := New(1, namedCategory{names: []string{"named", "broken"}})

	require.True(t, c.Equal(New(1, namedCategory{names: []string{"named", "other"}})))
	require.False(t, c.Equal(New(1, namedCategory{names: []string{"renamed", "broken"}})))
	require.False(t, c.Equal(New(0, namedCategory{names: []string{"named"}})))
	require.False(t, c.Equal(Make(InvalidArgument)))
}

func TestCondition_Err_MatchesConditionsOfNonComparableCategories(t *testing.T) {
	c := New(1, namedCategory{names: []string{"named", "broken"}})

	require.NotPanics(t, func() {
		require.ErrorIs(t, c.Err(), c.Err())
		require.NotErrorIs(t, c.Err(), Make(InvalidArgument).Err())
	})
}

func TestCondition_Equal_ComparesComparableCategoriesByIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockCategory(ctrl)
	second := NewMockCategory(ctrl)

	require.True(t, New(1, first).Equal(New(1, first)))
	require.False(t, New(1, first).Equal(New(1, second)))
	require.True(t, Make(InvalidArgument).Equal(New(1, Generic())))
}

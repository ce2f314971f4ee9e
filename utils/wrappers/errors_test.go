// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrs(t *testing.T) {
	require := require.New(t)

	errs := Errs{}
	require.False(errs.Errored())

	errs.Add(nil, nil)
	require.False(errs.Errored())

	err1 := errors.New("first")
	err2 := errors.New("second")
	errs.Add(nil, err1, err2)
	require.True(errs.Errored())
	require.Equal(err1, errs.Err)

	// Later errors never replace the first one.
	errs.Add(err2)
	require.Equal(err1, errs.Err)
}

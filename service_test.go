// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package didentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceValid(t *testing.T) {
	req := 2
	svc, err := newService("my-service", "MessagingService", "https://example.com/endpoint", &req)
	require.NoError(t, err)
	assert.Equal(t, "my-service", svc.Alias())
	got, ok := svc.PriorityRequirement()
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestNewServiceRejectsBadURL(t *testing.T) {
	_, err := newService("my-service", "MessagingService", "not a url", nil)
	assert.True(t, IsKind(err, KindValidation))
}

func TestNewServiceRejectsEmptyType(t *testing.T) {
	_, err := newService("my-service", "", "https://example.com", nil)
	assert.True(t, IsKind(err, KindValidation))
}

func TestNewServiceRejectsNegativePriorityRequirement(t *testing.T) {
	req := -1
	_, err := newService("my-service", "MessagingService", "https://example.com", &req)
	assert.True(t, IsKind(err, KindValidation))
}

func TestServiceEqual(t *testing.T) {
	a, err := newService("my-service", "MessagingService", "https://example.com", nil)
	require.NoError(t, err)
	b, err := newService("my-service", "MessagingService", "https://example.com", nil)
	require.NoError(t, err)
	c, err := newService("other-service", "MessagingService", "https://example.com", nil)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

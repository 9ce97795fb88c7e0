// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/cardex/pkg/pagination"
)

/*
TestWindow_Descending verifies the sort order predicate.
*/
func TestWindow_Descending(t *testing.T) {
	assert.True(t, pagination.Window{SortOrder: pagination.OrderDescending}.Descending())
	assert.False(t, pagination.Window{SortOrder: pagination.OrderAscending}.Descending())
	assert.False(t, pagination.Window{}.Descending())
}

package mcp_test

import (
	"testing"

	mcpadapter "github.com/abdidvp/stockroom/internal/adapters/inbound/mcp"
	"github.com/abdidvp/stockroom/internal/application"
	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServerSession(t *testing.T) *application.Session {
	t.Helper()
	log, _ := test.NewNullLogger()
	sess, err := application.NewSession(domain.DefaultConfig(), log)
	require.NoError(t, err)
	return sess
}

func TestNewStockroomMCPServer(t *testing.T) {
	s := mcpadapter.NewStockroomMCPServer(newServerSession(t), "test")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewStockroomMCPServer(newServerSession(t), "test")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"stockroom_list_products",
		"stockroom_add_product",
		"stockroom_update_product",
		"stockroom_restock",
		"stockroom_procure",
		"stockroom_statistics",
		"stockroom_low_stock",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

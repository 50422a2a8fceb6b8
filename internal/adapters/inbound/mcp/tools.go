package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/stockroom/internal/application"
)

// registerTools registers all stockroom MCP tools on the given server.
func registerTools(s *server.MCPServer, sess *application.Session) {
	// 1. stockroom_list_products
	s.AddTool(
		mcplib.NewTool("stockroom_list_products",
			mcplib.WithDescription("Returns every product in the catalog as JSON, in insertion order"),
		),
		handleListProducts(sess),
	)

	// 2. stockroom_add_product
	s.AddTool(
		mcplib.NewTool("stockroom_add_product",
			mcplib.WithDescription("Adds a new product. Names must be unique ignoring case."),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name")),
			mcplib.WithString("quantity", mcplib.Required(), mcplib.Description("Initial stock, a non-negative integer")),
			mcplib.WithString("price", mcplib.Required(), mcplib.Description("Unit price, a non-negative decimal")),
			mcplib.WithString("mode", mcplib.Required(), mcplib.Description("Shipment mode: land (good) or sea (cargo)")),
		),
		handleAddProduct(sess),
	)

	// 3. stockroom_update_product
	s.AddTool(
		mcplib.NewTool("stockroom_update_product",
			mcplib.WithDescription("Updates the given fields of an existing product. Omitted fields are unchanged; quantity is absolute."),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product id")),
			mcplib.WithString("name", mcplib.Description("New name")),
			mcplib.WithString("quantity", mcplib.Description("New absolute quantity")),
			mcplib.WithString("price", mcplib.Description("New price")),
			mcplib.WithString("mode", mcplib.Description("New shipment mode: land or sea")),
		),
		handleUpdateProduct(sess),
	)

	// 4. stockroom_restock
	s.AddTool(
		mcplib.NewTool("stockroom_restock",
			mcplib.WithDescription("Sets the stock level of an existing product"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product id")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("New absolute quantity")),
		),
		handleRestock(sess),
	)

	// 5. stockroom_procure
	s.AddTool(
		mcplib.NewTool("stockroom_procure",
			mcplib.WithDescription("Places a procurement order, deducting stock and returning the expected delivery date"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product id")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("Units to procure")),
			mcplib.WithString("mode", mcplib.Description("Shipment mode (recorded on the order only)")),
		),
		handleProcure(sess),
	)

	// 6. stockroom_statistics
	s.AddTool(
		mcplib.NewTool("stockroom_statistics",
			mcplib.WithDescription("Returns total stock and product counts per type"),
		),
		handleStatistics(sess),
	)

	// 7. stockroom_low_stock
	s.AddTool(
		mcplib.NewTool("stockroom_low_stock",
			mcplib.WithDescription("Returns the low stock notifications recorded so far"),
		),
		handleLowStock(sess),
	)
}

func handleListProducts(sess *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(sess.Stock.Products())
	}
}

func handleAddProduct(sess *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		mode, err := request.RequireString("mode")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		np, err := application.ParseNewProduct(name, argText(request, "quantity"), argText(request, "price"), mode)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		id, err := sess.Manager.CreateProduct(np.Name, np.Quantity, np.Price, np.Type)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		p, err := sess.Stock.Product(id)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(p)
	}
}

func handleUpdateProduct(sess *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		u := application.ProductUpdate{
			Name: request.GetString("name", ""),
			Mode: request.GetString("mode", ""),
		}
		if qty := argText(request, "quantity"); qty != "" {
			n, err := application.ParseQuantity(qty)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			u.Quantity = &n
		}
		if price := argText(request, "price"); price != "" {
			p, err := application.ParsePrice(price)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			u.Price = &p
		}

		res, err := sess.Manager.UpdateProduct(id, u)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(updateResponse{
			Summary:  res.Summary(),
			Warnings: res.Warnings,
			Product:  res.Product,
		})
	}
}

func handleRestock(sess *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		qty, err := application.ParseQuantity(argText(request, "quantity"))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		p, err := sess.Manager.RestockExisting(id, qty)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(p)
	}
}

func handleProcure(sess *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id := request.GetString("id", "")
		mode := request.GetString("mode", "")

		res, err := sess.Stock.Procure(id, argText(request, "quantity"), mode)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(procureResponse{
			Message:               res.Message(),
			Order:                 res,
			LowStockNotifications: sess.Stock.LowStockNotifications(),
		})
	}
}

func handleStatistics(sess *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		stats := sess.Stock.Statistics()
		return jsonResult(statisticsResponse{Text: stats.String(), Statistics: stats})
	}
}

func handleLowStock(sess *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(sess.Stock.LowStockNotifications())
	}
}

// argText reads an argument that clients may send either as a string or as a
// JSON number.
func argText(request mcplib.CallToolRequest, key string) string {
	switch v := request.GetArguments()[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

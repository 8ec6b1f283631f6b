package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func newTestStockRepo(ddb *fakeDynamo) *StockDynamoRepository {
	repo := NewStockDynamoRepository(ddb, "", nil)
	repo.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	return repo
}

func putStock(t *testing.T, ddb *fakeDynamo, s entities.Stock) {
	t.Helper()
	av, err := attributevalue.MarshalMap(toStockItem(s))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	ddb.items[s.ProductID] = av
}

func TestStockDynamoRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds unknown product", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := newTestStockRepo(ddb)

		got, err := repo.Get(ctx, "7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Available != entities.DefaultInitialStock || got.Reserved != 0 || got.ReorderLevel != entities.DefaultReorderLevel {
			t.Fatalf("unexpected seed: %+v", got)
		}
		if _, ok := ddb.items["7"]; !ok {
			t.Fatalf("expected seeded item to be stored")
		}
	})

	t.Run("existing row is returned as stored", func(t *testing.T) {
		ddb := newFakeDynamo()
		putStock(t, ddb, entities.Stock{ProductID: "1", Available: 3, Reserved: 2, Sold: 9, ReorderLevel: 10})
		repo := newTestStockRepo(ddb)

		got, err := repo.Get(ctx, "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Available != 3 || got.Reserved != 2 || got.Sold != 9 {
			t.Fatalf("unexpected stock: %+v", got)
		}
		if got.Status() != entities.StockStatusLowStock || !got.NeedsRestock() {
			t.Fatalf("expected low stock, got %s", got.Status())
		}
	})
}

func TestStockDynamoRepository_Mutations(t *testing.T) {
	tests := []struct {
		name     string
		call     func(r *StockDynamoRepository) (entities.Stock, error)
		wantExpr string
		wantCond string
	}{
		{
			name:     "reserve moves available to reserved",
			call:     func(r *StockDynamoRepository) (entities.Stock, error) { return r.Reserve(context.Background(), "1", 2) },
			wantExpr: "available_quantity = available_quantity - :qty, reserved_quantity = reserved_quantity + :qty",
			wantCond: "available_quantity >= :qty",
		},
		{
			name: "confirm moves reserved to sold",
			call: func(r *StockDynamoRepository) (entities.Stock, error) {
				return r.ConfirmSale(context.Background(), "1", 2)
			},
			wantExpr: "reserved_quantity = reserved_quantity - :qty, sold_quantity = sold_quantity + :qty",
			wantCond: "reserved_quantity >= :qty",
		},
		{
			name:     "release moves reserved back to available",
			call:     func(r *StockDynamoRepository) (entities.Stock, error) { return r.Release(context.Background(), "1", 2) },
			wantExpr: "available_quantity = available_quantity + :qty, reserved_quantity = reserved_quantity - :qty",
			wantCond: "reserved_quantity >= :qty",
		},
		{
			name:     "restock adds to available",
			call:     func(r *StockDynamoRepository) (entities.Stock, error) { return r.Restock(context.Background(), "1", 2) },
			wantExpr: "available_quantity = available_quantity + :qty, last_updated",
			wantCond: "attribute_exists(product_id)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ddb := newFakeDynamo()
			putStock(t, ddb, entities.Stock{ProductID: "1", Available: 5, Reserved: 2, ReorderLevel: 10})
			out, err := attributevalue.MarshalMap(toStockItem(entities.Stock{ProductID: "1", Available: 3, Reserved: 4, ReorderLevel: 10}))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			ddb.updateOut = out
			repo := newTestStockRepo(ddb)

			got, err := tt.call(repo)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ProductID != "1" || got.Available != 3 || got.Reserved != 4 {
				t.Fatalf("unexpected stock: %+v", got)
			}

			in := ddb.lastUpdate
			if *in.TableName != DefaultStockTableName {
				t.Fatalf("unexpected table %s", *in.TableName)
			}
			if !strings.Contains(*in.UpdateExpression, tt.wantExpr) {
				t.Fatalf("unexpected update expression %q", *in.UpdateExpression)
			}
			if *in.ConditionExpression != tt.wantCond {
				t.Fatalf("unexpected condition %q", *in.ConditionExpression)
			}
			if v := in.ExpressionAttributeValues[":qty"].(*types.AttributeValueMemberN).Value; v != "2" {
				t.Fatalf("unexpected :qty %s", v)
			}
			if in.ReturnValues != types.ReturnValueAllNew {
				t.Fatalf("expected ALL_NEW, got %s", in.ReturnValues)
			}
		})
	}

	t.Run("failed condition reports insufficient stock", func(t *testing.T) {
		ddb := newFakeDynamo()
		putStock(t, ddb, entities.Stock{ProductID: "1", Available: 1, ReorderLevel: 10})
		ddb.updateErr = &types.ConditionalCheckFailedException{}
		repo := newTestStockRepo(ddb)

		_, err := repo.Reserve(context.Background(), "1", 2)
		if !errors.Is(err, interfaces.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.updateErr = errors.New("throttled")
		repo := newTestStockRepo(ddb)

		_, err := repo.Release(context.Background(), "1", 1)
		if err == nil || errors.Is(err, interfaces.ErrInsufficientStock) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})

	t.Run("non positive quantity is rejected before any write", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := newTestStockRepo(ddb)

		if _, err := repo.ConfirmSale(context.Background(), "1", 0); err == nil {
			t.Fatalf("expected error")
		}
		if ddb.lastUpdate != nil {
			t.Fatalf("unexpected update %+v", ddb.lastUpdate)
		}
	})
}

func TestStockDynamoRepository_List(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.pageSize = 1
	for _, id := range []string{"10", "2", "1"} {
		putStock(t, ddb, entities.Stock{ProductID: id, Available: 5, ReorderLevel: 10})
	}
	repo := newTestStockRepo(ddb)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ProductID != "1" || got[1].ProductID != "2" || got[2].ProductID != "10" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if ddb.scanCalls != 3 {
		t.Fatalf("expected 3 scan pages, got %d", ddb.scanCalls)
	}
}

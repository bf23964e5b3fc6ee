package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

func sampleOrder() (*model.Order, *model.User) {
	order := &model.Order{
		ID:     "a1b2c3d4-0000-0000-0000-000000000000",
		UserID: "user-1",
		Items: []model.OrderItem{
			{Name: "Набір патронів 9мм", Quantity: 2, BasePrice: 800, TotalAmount: 1600},
			{Name: "Індивідуальне тренування", Quantity: 1, BasePrice: 500, TotalAmount: 500},
		},
		TotalAmount:       2100,
		BonusPointsEarned: 50,
		Status:            model.OrderStatusPending,
		CreatedAt:         time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
	}
	user := &model.User{
		ID:       "user-1",
		Phone:    "+380501112233",
		FullName: "Тарас Шевченко",
	}
	return order, user
}

func TestSendOrderNotification(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	order, user := sampleOrder()
	c := NewClient(srv.URL)

	err := c.SendOrderNotification(context.Background(), "test-token", "42", order, user)
	if err != nil {
		t.Fatalf("SendOrderNotification error: %v", err)
	}

	if gotPath != "/bottest-token/sendMessage" {
		t.Fatalf("path = %q, want /bottest-token/sendMessage", gotPath)
	}
	if gotBody.ChatID != "42" {
		t.Fatalf("chat_id = %q, want 42", gotBody.ChatID)
	}
	if !strings.Contains(gotBody.Text, "#a1b2c3d4") {
		t.Fatalf("message must contain short order id, got %q", gotBody.Text)
	}
}

func TestSendOrderNotification_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	order, user := sampleOrder()
	c := NewClient(srv.URL)

	if err := c.SendOrderNotification(context.Background(), "bad", "42", order, user); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestSendOrderNotification_NotConfigured(t *testing.T) {
	c := &Client{}

	order, user := sampleOrder()
	if err := c.SendOrderNotification(context.Background(), "t", "c", order, user); err == nil {
		t.Fatalf("expected error for unconfigured client")
	}
}

func TestFormatOrderMessage(t *testing.T) {
	order, user := sampleOrder()

	msg := FormatOrderMessage(order, user)

	for _, want := range []string{
		"Тарас Шевченко",
		"+380501112233",
		"Набір патронів 9мм: 2 x 800 грн = 1600 грн",
		"Загальна сума: 2100 грн",
		"Бонуси нараховано: 50",
		"15.03.2025 14:30",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message does not contain %q:\n%s", want, msg)
		}
	}
}

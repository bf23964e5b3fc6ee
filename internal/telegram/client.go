// Package telegram предоставляет клиент для отправки уведомлений о заказах в Telegram.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// Client инкапсулирует HTTP-взаимодействие с Telegram Bot API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент Telegram Bot API по указанному адресу.
func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = 5 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: rc.StandardClient(),
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendOrderNotification отправляет оператору сообщение об оформленном заказе.
func (c *Client) SendOrderNotification(ctx context.Context, botToken, chatID string, order *model.Order, user *model.User) error {
	if c == nil || c.baseURL == "" {
		return fmt.Errorf("telegram client not configured")
	}

	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", base, botToken)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      FormatOrderMessage(order, user),
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return nil
}

// FormatOrderMessage собирает текст уведомления о заказе для оператора.
func FormatOrderMessage(order *model.Order, user *model.User) string {
	var items strings.Builder
	for i, it := range order.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		items.WriteString(fmt.Sprintf("  - %s: %d x %s грн = %s грн",
			it.Name, it.Quantity, formatAmount(it.BasePrice), formatAmount(it.TotalAmount)))
	}

	orderID := order.ID
	if len(orderID) > 8 {
		orderID = orderID[:8]
	}

	return fmt.Sprintf(`🎯 НОВЕ ЗАМОВЛЕННЯ #%s

👤 Клієнт: %s
📱 Телефон: %s

📦 Товари/Послуги:
%s

💰 Загальна сума: %s грн
🎁 Бонуси нараховано: %d
📅 Дата: %s`,
		orderID,
		user.FullName,
		user.Phone,
		items.String(),
		formatAmount(order.TotalAmount),
		order.BonusPointsEarned,
		order.CreatedAt.Format("02.01.2006 15:04"),
	)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

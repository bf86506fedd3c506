package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

// Диапазоны id из сидовых данных
const (
	maxUserID     = 20
	maxSaleItemID = 50
)

type line struct {
	SaleItemID int `json:"sale_item_id"`
	Quantity   int `json:"quantity"`
	Price      int `json:"price"`
}

type checkout struct {
	ShippingAddress string `json:"shipping_address"`
	Note            string `json:"note,omitempty"`
	Items           []line `json:"items"`
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doCheckout)
		}
		for range rand.Intn(5) {
			wg.Go(doRead)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomCheckout() checkout {
	items := make([]line, 0, rand.Intn(4)+1)
	for range cap(items) {
		items = append(items, line{
			SaleItemID: rand.Intn(maxSaleItemID) + 1,
			Quantity:   rand.Intn(3) + 1,
			Price:      (rand.Intn(50) + 1) * 100,
		})
	}
	return checkout{
		ShippingAddress: fmt.Sprintf("Street %d", rand.Intn(100)),
		Items:           items,
	}
}

func doCheckout() {
	body, err := json.Marshal(randomCheckout())
	if err != nil {
		fmt.Println("Ошибка сериализации:", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", fmt.Sprint(rand.Intn(maxUserID)+1))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST /orders ->", resp.Status)
	resp.Body.Close()
}

func doRead() {
	paths := []string{
		fmt.Sprintf("/orders/%d", rand.Intn(100)+1),
		fmt.Sprintf("/orders?page=%d", rand.Intn(3)),
		"/cart",
	}
	path := paths[rand.Intn(len(paths))]

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("X-User-Id", fmt.Sprint(rand.Intn(maxUserID)+1))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", path, "->", resp.Status)
	resp.Body.Close()
}

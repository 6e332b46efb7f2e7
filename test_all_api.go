package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const baseURL = "http://localhost:8080"

// 手工冒烟脚本：走一遍注册 → 登录 → 建菜品 → 发布菜单 → 下单 → 加减订单项
func main() {
	fmt.Println("==========================================")
	fmt.Println("    完整API测试")
	fmt.Println("==========================================")
	fmt.Println()

	// 1. 注册管理员与客户
	fmt.Println("1. 注册用户...")
	_, _ = httpPost("/api/register", "", map[string]interface{}{
		"username": "boss", "password": "boss123", "role": "admin",
	})
	_, _ = httpPost("/api/register", "", map[string]interface{}{
		"username": "cliente1", "password": "pass123",
	})

	// 2. 登录
	fmt.Println("\n2. 登录获取token...")
	adminToken := mustLogin("boss", "boss123")
	clientToken := mustLogin("cliente1", "pass123")

	// 3. 管理员建菜品
	fmt.Println("\n3. 创建菜品...")
	prodResp, err := httpPost("/api/admin/products", adminToken, map[string]interface{}{
		"name": "烤牛肉配土豆泥", "price": 4200, "description": "冒烟测试菜品",
	})
	if err != nil {
		fmt.Printf("   创建菜品失败: %v\n", err)
		return
	}
	productID := dataField(prodResp, "id")
	fmt.Printf("   菜品ID: %.0f\n", productID)

	// 4. 发布今日菜单并挂菜品
	fmt.Println("\n4. 发布今日菜单...")
	dayResp, err := httpPost("/api/admin/menu-days", adminToken, map[string]interface{}{
		"date": time.Now().Format("2006-01-02"),
	})
	if err != nil {
		fmt.Printf("   创建菜单日失败: %v\n", err)
		return
	}
	dayID := dataField(dayResp, "id")
	_, _ = httpPost(fmt.Sprintf("/api/admin/menu-days/%.0f/items", dayID), adminToken, map[string]interface{}{
		"product_id": int64(productID),
	})

	// 5. 客户下单并添加订单项
	fmt.Println("\n5. 客户下单...")
	orderResp, err := httpPost("/api/orders", clientToken, map[string]interface{}{
		"menu_day_id": int64(dayID),
	})
	if err != nil {
		fmt.Printf("   下单失败: %v\n", err)
		return
	}
	orderID := dataField(orderResp, "id")

	itemResp, _ := httpPost(fmt.Sprintf("/api/orders/%.0f/items", orderID), clientToken, map[string]interface{}{
		"product_id": int64(productID), "quantity": 3,
	})
	fmt.Printf("   订单项: %v\n", itemResp)

	// 6. 校验订单总价
	fmt.Println("\n6. 查询订单总价...")
	getResp, _ := httpGet(fmt.Sprintf("/api/orders/%.0f", orderID), clientToken)
	fmt.Printf("   订单: %v\n", getResp)

	fmt.Println("\n完成")
}

func mustLogin(username, password string) string {
	resp, err := httpPost("/api/login", "", map[string]interface{}{
		"username": username, "password": password,
	})
	if err != nil {
		panic(fmt.Sprintf("login %s failed: %v", username, err))
	}
	data, _ := resp["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	return token
}

func dataField(resp map[string]interface{}, field string) float64 {
	data, _ := resp["data"].(map[string]interface{})
	v, _ := data[field].(float64)
	return v
}

func httpPost(path, token string, body interface{}) (map[string]interface{}, error) {
	buf, _ := json.Marshal(body)
	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return doRequest(req)
}

func httpGet(path, token string) (map[string]interface{}, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return doRequest(req)
}

func doRequest(req *http.Request) (map[string]interface{}, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("bad response (%d): %s", resp.StatusCode, raw)
	}
	if resp.StatusCode >= 400 {
		return out, fmt.Errorf("http %d: %v", resp.StatusCode, out["msg"])
	}
	return out, nil
}

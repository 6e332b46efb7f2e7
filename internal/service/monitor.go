package service

import (
	"sync"
	"time"
)

// Monitor 进程内监控计数，用于后台观察下单链路的健康状况
type Monitor struct {
	mu sync.RWMutex

	// 错误统计
	DBErrors int64
	MQErrors int64

	// 业务统计
	OrdersCreated     int64
	ItemMutations     int64
	ValidationRejects int64

	// 时间统计
	LastOrderTime time.Time
	LastMQError   time.Time
	LastDBError   time.Time
}

var globalMonitor = &Monitor{}

// GetMonitor 获取全局监控实例
func GetMonitor() *Monitor {
	return globalMonitor
}

// RecordOrderCreated 记录订单创建
func (m *Monitor) RecordOrderCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OrdersCreated++
	m.LastOrderTime = time.Now()
}

// RecordItemMutation 记录订单项变更（含新增/修改/删除）
func (m *Monitor) RecordItemMutation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemMutations++
}

// RecordValidationReject 记录被校验拒绝的订单项请求
func (m *Monitor) RecordValidationReject() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationRejects++
}

// RecordMQError 记录 MQ 错误
func (m *Monitor) RecordMQError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MQErrors++
	m.LastMQError = time.Now()
}

// RecordDBError 记录数据库错误
func (m *Monitor) RecordDBError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DBErrors++
	m.LastDBError = time.Now()
}

// MonitorSnapshot 监控快照
type MonitorSnapshot struct {
	DBErrors          int64  `json:"db_errors"`
	MQErrors          int64  `json:"mq_errors"`
	OrdersCreated     int64  `json:"orders_created"`
	ItemMutations     int64  `json:"item_mutations"`
	ValidationRejects int64  `json:"validation_rejects"`
	LastOrderTime     string `json:"last_order_time"`
}

// Snapshot 返回当前计数的拷贝
func (m *Monitor) Snapshot() MonitorSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := MonitorSnapshot{
		DBErrors:          m.DBErrors,
		MQErrors:          m.MQErrors,
		OrdersCreated:     m.OrdersCreated,
		ItemMutations:     m.ItemMutations,
		ValidationRejects: m.ValidationRejects,
	}
	if !m.LastOrderTime.IsZero() {
		snap.LastOrderTime = m.LastOrderTime.Format("2006-01-02 15:04:05")
	}
	return snap
}

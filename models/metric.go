package models

import (
	"encoding/json"
	"fmt"
)

// MetricType identifies a system performance metric series
type MetricType string

const (
	MetricTypeCPU     MetricType = "cpu"
	MetricTypeMemory  MetricType = "memory"
	MetricTypeDisk    MetricType = "disk"
	MetricTypeNetwork MetricType = "network"
)

// ParseMetricType converts a caller-supplied string into a MetricType,
// rejecting values outside the closed set.
func ParseMetricType(s string) (MetricType, error) {
	switch MetricType(s) {
	case MetricTypeCPU, MetricTypeMemory, MetricTypeDisk, MetricTypeNetwork:
		return MetricType(s), nil
	}
	return "", fmt.Errorf("invalid metric type %q", s)
}

// UnmarshalJSON rejects values outside the closed set.
func (m *MetricType) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("metric type: %w", err)
	}
	parsed, err := ParseMetricType(v)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Metric is a single sampled value in a metric series
type Metric struct {
	Timestamp Timestamp `json:"timestamp"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
}

// SystemMetrics groups a metric series for one system over a period
type SystemMetrics struct {
	SystemID    string     `json:"system_id"`
	MetricType  MetricType `json:"metric_type"`
	Metrics     []Metric   `json:"metrics"`
	PeriodStart Timestamp  `json:"period_start"`
	PeriodEnd   Timestamp  `json:"period_end"`
}

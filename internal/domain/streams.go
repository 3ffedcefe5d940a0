package domain

import "time"

// SparkLogLine is one task-level log entry.
type SparkLogLine struct {
	Timestamp time.Time `parquet:"ts,timestamp(millisecond)"`
	AppID     string    `parquet:"app_id"`
	JobID     int       `parquet:"job_id"`
	StageID   int       `parquet:"stage_id"`
	TaskID    int       `parquet:"task_id"`
	Level     string    `parquet:"level"`
	Message   string    `parquet:"message"`
}

// EcommerceEvent is a single clickstream event.
type EcommerceEvent struct {
	UserID    int       `parquet:"user_id"`
	EventTime time.Time `parquet:"event_time,timestamp(millisecond)"`
	EventType string    `parquet:"event_type"`
}

// SalesOrder is a single order on a given day.
type SalesOrder struct {
	OrderID   string    `parquet:"order_id"`
	OrderDate time.Time `parquet:"order_date,date"`
	Amount    float64   `parquet:"amount"`
}

// SensorReading is one IoT measurement.
type SensorReading struct {
	DeviceID  int       `parquet:"device_id"`
	Timestamp time.Time `parquet:"timestamp,timestamp(millisecond)"`
	Value     float64   `parquet:"value"`
}

// Measurement is one lab experiment step.
type Measurement struct {
	ExperimentID int     `parquet:"experiment_id"`
	Step         int     `parquet:"step"`
	Value        float64 `parquet:"value"`
}

package unionfind

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	dsuOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dsu_ops_total",
			Help: "The total number of union-find operations",
		},
		[]string{"op", "status"},
	)
	dsuDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dsu_op_duration_seconds",
			Help:    "The duration of union-find operations",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(dsuOps, dsuDuration)
}

// Instrumented 是 DSU 的指标采集封装，按操作维度上报调用量与耗时。
type Instrumented struct {
	dsu *DSU
}

// NewInstrumented 封装一个已有的 DSU。
func NewInstrumented(d *DSU) *Instrumented {
	return &Instrumented{dsu: d}
}

func observe(op string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dsuOps.WithLabelValues(op, status).Inc()
	dsuDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Find 返回 x 所在集合的根。
func (m *Instrumented) Find(x int) (int, error) {
	start := time.Now()
	root, err := m.dsu.Find(x)
	observe("find", start, err)
	return root, err
}

// Union 合并 x 与 y 所在的集合。
func (m *Instrumented) Union(x, y int) (bool, error) {
	start := time.Now()
	merged, err := m.dsu.Union(x, y)
	observe("union", start, err)
	return merged, err
}

// Connected 判断 x 与 y 是否属于同一集合。
func (m *Instrumented) Connected(x, y int) (bool, error) {
	start := time.Now()
	ok, err := m.dsu.Connected(x, y)
	observe("connected", start, err)
	return ok, err
}

// Count 返回当前连通分量数量。
func (m *Instrumented) Count() int {
	return m.dsu.Count()
}

// Len 返回元素全集的大小。
func (m *Instrumented) Len() int {
	return m.dsu.Len()
}

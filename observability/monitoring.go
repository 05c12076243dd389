// Package observability keeps in-process counters and process statistics.
package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Stats is the snapshot exposed by the health endpoint.
type Stats struct {
	QuestionsIngested  uint64  `json:"questions_ingested"`
	QuestionsClustered uint64  `json:"questions_clustered"`
	ReportsBuilt       uint64  `json:"reports_built"`
	ReportFailures     uint64  `json:"report_failures"`
	SummaryFailures    uint64  `json:"summary_failures"`
	RSSMb              uint64  `json:"rss_mb"`
	CPUPercent         float64 `json:"cpu_percent"`
	AllocMemMb         uint64  `json:"alloc_mem_mb"`
	NumGC              uint32  `json:"num_gc"`
	Goroutines         int     `json:"goroutines"`
	UpdatedAt          string  `json:"updated_at,omitempty"`
}

type Monitoring struct {
	log *slog.Logger

	questionsIngested  atomic.Uint64
	questionsClustered atomic.Uint64
	reportsBuilt       atomic.Uint64
	reportFailures     atomic.Uint64
	summaryFailures    atomic.Uint64

	mu      sync.RWMutex
	process Stats
	proc    *process.Process
}

func NewMonitoring(log *slog.Logger) *Monitoring {
	m := &Monitoring{log: log}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Debug("Process statistics unavailable", "error", err)
	} else {
		m.proc = p
	}
	return m
}

func (m *Monitoring) IncrQuestionsIngested() { m.questionsIngested.Add(1) }

func (m *Monitoring) AddQuestionsClustered(n int) { m.questionsClustered.Add(uint64(n)) }

func (m *Monitoring) IncrReportsBuilt() { m.reportsBuilt.Add(1) }

func (m *Monitoring) IncrReportFailures() { m.reportFailures.Add(1) }

func (m *Monitoring) IncrSummaryFailures() { m.summaryFailures.Add(1) }

// Refresh samples the process and the Go runtime.
func (m *Monitoring) Refresh() {
	var s Stats
	if m.proc != nil {
		if mem, err := m.proc.MemoryInfo(); err == nil {
			s.RSSMb = mem.RSS / 1024 / 1024
		} else {
			m.log.Debug("Error while finding process memory", "err", err)
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			s.CPUPercent = cpu
		} else {
			m.log.Debug("Error while finding process cpu usage", "err", err)
		}
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	s.AllocMemMb = mem.Alloc / 1024 / 1024
	s.NumGC = mem.NumGC
	s.Goroutines = runtime.NumGoroutine()
	s.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	m.mu.Lock()
	m.process = s
	m.mu.Unlock()
}

// Listen refreshes process statistics every interval until ctx is done.
func (m *Monitoring) Listen(ctx context.Context, interval time.Duration) {
	m.Refresh()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.log.Debug("Monitoring stopped")
			return
		case <-ticker.C:
			m.Refresh()
		}
	}
}

func (m *Monitoring) Snapshot() Stats {
	m.mu.RLock()
	s := m.process
	m.mu.RUnlock()

	s.QuestionsIngested = m.questionsIngested.Load()
	s.QuestionsClustered = m.questionsClustered.Load()
	s.ReportsBuilt = m.reportsBuilt.Load()
	s.ReportFailures = m.reportFailures.Load()
	s.SummaryFailures = m.summaryFailures.Load()
	return s
}

package v1

import (
	"github.com/maxtek/threadpool/internal/demo"
	"github.com/maxtek/threadpool/pkg/threadpool"
)

func (p *PoolStatus) FromModel(s threadpool.Stats) {
	p.Name = s.Name
	p.Workers = s.Workers
	p.Busy = s.Busy
	p.Queued = s.Queued
	p.Active = s.Active
}

// NewPoolStatusFromModel converts pool stats to an API PoolStatus.
func NewPoolStatusFromModel(s threadpool.Stats) PoolStatus {
	var p PoolStatus
	p.FromModel(s)
	return p
}

// NewDemoReportFromModel converts a demo report to an API DemoReport.
func NewDemoReportFromModel(r demo.Report) DemoReport {
	return DemoReport{
		Produced:    r.Produced,
		Consumed:    r.Consumed,
		ProducedSum: r.ProducedSum,
		ConsumedSum: r.ConsumedSum,
		ElapsedMs:   r.Elapsed.Milliseconds(),
	}
}

package hooking

import (
	"github.com/sarchlab/arraylist/datarecording"
)

// Table names used by the DBTracer.
const (
	SortTableName      = "arraylist_sort"
	PartitionTableName = "arraylist_partition"
	GrowthTableName    = "arraylist_growth"
)

// SortRecord is a finished sort as stored in the database.
type SortRecord struct {
	ID         string
	Where      string
	Algorithm  string
	Size       int
	Partitions int
	StartTime  float64
	EndTime    float64
}

// PartitionRecord is a partition step as stored in the database.
type PartitionRecord struct {
	SortID     string
	Where      string
	Low        int
	High       int
	PivotIndex int
	Time       float64
}

// GrowthRecord is a storage replacement as stored in the database.
type GrowthRecord struct {
	Where       string
	OldCapacity int
	NewCapacity int
	Size        int
	Time        float64
}

// DBTracer is a tracer that stores sorts, partitions, and growths into a
// database.
type DBTracer struct {
	timeTeller   TimeTeller
	recorder     datarecording.DataRecorder
	tracingSorts map[string]SortRecord
}

// NewDBTracer creates a new DBTracer and the tables it writes to.
func NewDBTracer(
	timeTeller TimeTeller,
	recorder datarecording.DataRecorder,
) *DBTracer {
	t := &DBTracer{
		timeTeller:   timeTeller,
		recorder:     recorder,
		tracingSorts: make(map[string]SortRecord),
	}

	recorder.CreateTable(SortTableName, SortRecord{})
	recorder.CreateTable(PartitionTableName, PartitionRecord{})
	recorder.CreateTable(GrowthTableName, GrowthRecord{})

	return t
}

// Func records the event carried by the hook context.
func (t *DBTracer) Func(ctx HookCtx) {
	where := ""
	if ctx.Domain != nil {
		where = ctx.Domain.Name()
	}

	switch ctx.Pos {
	case HookPosSortStart:
		t.StartSort(where, ctx.Item.(SortStart))
	case HookPosPartition:
		t.Partition(where, ctx.Item.(PartitionStep))
	case HookPosSortEnd:
		t.EndSort(ctx.Item.(SortEnd))
	case HookPosGrow:
		t.Grow(where, ctx.Item.(Growth))
	}
}

// StartSort marks the start of a sort.
func (t *DBTracer) StartSort(where string, s SortStart) {
	if s.ID == "" {
		panic("sort ID must be set")
	}

	t.tracingSorts[s.ID] = SortRecord{
		ID:        s.ID,
		Where:     where,
		Algorithm: s.Algorithm,
		Size:      s.Size,
		StartTime: t.timeTeller.Now(),
	}
}

// Partition records one partition step.
func (t *DBTracer) Partition(where string, step PartitionStep) {
	sort, ok := t.tracingSorts[step.SortID]
	if ok {
		sort.Partitions++
		t.tracingSorts[step.SortID] = sort
	}

	t.recorder.InsertData(PartitionTableName, PartitionRecord{
		SortID:     step.SortID,
		Where:      where,
		Low:        step.Low,
		High:       step.High,
		PivotIndex: step.PivotIndex,
		Time:       t.timeTeller.Now(),
	})
}

// EndSort marks the end of a sort and writes it.
func (t *DBTracer) EndSort(s SortEnd) {
	sort, ok := t.tracingSorts[s.ID]
	if !ok {
		return
	}

	sort.EndTime = t.timeTeller.Now()
	delete(t.tracingSorts, s.ID)

	t.recorder.InsertData(SortTableName, sort)
}

// Grow records a storage replacement.
func (t *DBTracer) Grow(where string, g Growth) {
	t.recorder.InsertData(GrowthTableName, GrowthRecord{
		Where:       where,
		OldCapacity: g.OldCapacity,
		NewCapacity: g.NewCapacity,
		Size:        g.Size,
		Time:        t.timeTeller.Now(),
	})
}

// Terminate writes unfinished sorts and flushes the recorder.
func (t *DBTracer) Terminate() {
	for _, sort := range t.tracingSorts {
		sort.EndTime = t.timeTeller.Now()
		t.recorder.InsertData(SortTableName, sort)
	}

	t.tracingSorts = make(map[string]SortRecord)

	t.recorder.Flush()
}

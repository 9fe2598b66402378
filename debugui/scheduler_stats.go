package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/sim"
)

// SchedulerStats plots frame times and tabulates per-system execution
// statistics.
type SchedulerStats struct {
	timer         *FrameTimer
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewSchedulerStats(historyFrames int) *SchedulerStats {
	return &SchedulerStats{
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds a frame time sample in seconds.
func (ss *SchedulerStats) Record(deltaTime float32) {
	ss.frameHistory[ss.frameIndex] = deltaTime * 1000.0
	ss.frameIndex = (ss.frameIndex + 1) % ss.historyFrames
}

// AverageFrameTime returns the mean of the recorded samples in milliseconds.
func (ss *SchedulerStats) AverageFrameTime() float32 {
	var sum float32
	for _, ft := range ss.frameHistory {
		sum += ft
	}
	return sum / float32(ss.historyFrames)
}

func (ss *SchedulerStats) Render(stats *sim.SchedulerStats, storage sim.StorageStats) {
	ss.Record(ss.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ss.AverageFrameTime()
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Systems: %d  Executions: %d", stats.SystemCount, stats.TotalExecutions))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ss.frameHistory[0], int32(len(ss.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Singletons (%d)", storage.SingletonCount)) {
		for _, name := range storage.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

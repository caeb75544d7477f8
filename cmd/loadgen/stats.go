package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// reqStat is the outcome of one generated request.
type reqStat struct {
	latency    time.Duration
	successful bool
	events     int
}

// collect drains one stat per request and prints the final report:
// average latency, success rate, event volume and overall throughput.
func collect(shape string, requests int, stats <-chan reqStat, elapsed func() time.Duration) {
	var (
		totalLatency time.Duration
		successful   int
		totalEvents  int
	)
	for i := 0; i < requests; i++ {
		stat := <-stats
		totalLatency += stat.latency
		totalEvents += stat.events
		if stat.successful {
			successful++
		}
	}

	took := elapsed()
	color.New(color.BgBlack, color.FgGreen).Printf("  ====== %s results ======\n", shape)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Requests", "Success", "Avg latency", "Events", "Total time", "Throughput"})
	table.Append([]string{
		fmt.Sprintf("%d", requests),
		fmt.Sprintf("%.1f%%", float64(successful)/float64(requests)*100),
		fmt.Sprintf("%v", (totalLatency / time.Duration(requests)).Round(time.Microsecond)),
		fmt.Sprintf("%d", totalEvents),
		fmt.Sprintf("%v", took.Round(time.Millisecond)),
		fmt.Sprintf("%.2f req/s", float64(requests)/took.Seconds()),
	})
	table.Render()
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"os-scheduling-simulator/internal/responses"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BE9FD"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6")).Bold(true)
)

// Render writes the title, the Gantt sequence and the schedule table of one result.
func Render(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), titleStyle.Render(title))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []responses.TimelineResponse) {
	_, _ = fmt.Fprintln(w, headerStyle.Render("Gantt schedule"))
	_, _ = fmt.Fprint(w, "|")
	for _, slice := range timeline {
		padding := strings.Repeat(" ", max(0, (8-len(slice.ProcessId))/2))
		_, _ = fmt.Fprint(w, padding, slice.ProcessId, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, slice := range timeline {
		_, _ = fmt.Fprint(w, slice.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, slice.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, headerStyle.Render("Schedule table"))

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ProcessId,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, throughput %.2f/t, idle %d of %d\n\n",
		response.CpuUtilization*100, response.CpuThroughput, response.IdleTime, response.TotalTime)
}

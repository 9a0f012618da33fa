package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/urfave/cli"
)

// Display the CPU and memory resources available to the renderer.
func HostInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resource", "Value"})

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		table.Append([]string{"CPU model", infos[0].ModelName})
		table.Append([]string{"CPU speed", fmt.Sprintf("%.0f MHz", infos[0].Mhz)})
	} else if err != nil {
		logger.Warningf("could not query cpu info: %v", err)
	}

	if physical, err := cpu.Counts(false); err == nil {
		table.Append([]string{"Physical cores", fmt.Sprintf("%d", physical)})
	}
	table.Append([]string{"Logical cores", fmt.Sprintf("%d", renderer.DefaultWorkerCount())})

	if vm, err := mem.VirtualMemory(); err == nil {
		table.Append([]string{"Total memory", fmt.Sprintf("%.1f GiB", float64(vm.Total)/(1<<30))})
		table.Append([]string{"Available memory", fmt.Sprintf("%.1f GiB", float64(vm.Available)/(1<<30))})
	} else {
		logger.Warningf("could not query memory info: %v", err)
	}

	table.SetFooter([]string{"Default workers", fmt.Sprintf("%d", renderer.DefaultWorkerCount())})
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

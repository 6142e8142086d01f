package main

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	pshost "github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/BeatGlow/oled"
	"github.com/BeatGlow/oled/font"
)

// sysStats is a snapshot of the host, shown on the status screen.
type sysStats struct {
	Hostname string
	CPU      float64 // percent
	MemUsed  uint64  // bytes
	MemTotal uint64  // bytes
	Uptime   time.Duration
	Rx, Tx   uint64 // bytes, all interfaces
}

func collectStats() (s sysStats, err error) {
	info, err := pshost.Info()
	if err != nil {
		return s, err
	}
	s.Hostname = info.Hostname
	s.Uptime = time.Duration(info.Uptime) * time.Second

	usage, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		return s, err
	}
	if len(usage) > 0 {
		s.CPU = usage[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return s, err
	}
	s.MemUsed, s.MemTotal = vm.Used, vm.Total

	counters, err := psnet.IOCounters(false)
	if err != nil {
		return s, err
	}
	if len(counters) > 0 {
		s.Rx, s.Tx = counters[0].BytesRecv, counters[0].BytesSent
	}
	return s, nil
}

// lines formats s as 21 column text lines, to fit a 128 pixel wide display in the small font.
func (s sysStats) lines() []string {
	return []string{
		truncate(s.Hostname, 21),
		fmt.Sprintf("CPU: %3.0f%%", s.CPU),
		fmt.Sprintf("RAM: %d/%d MB", s.MemUsed>>20, s.MemTotal>>20),
		fmt.Sprintf("UPT: %s", formatUptime(s.Uptime)),
		fmt.Sprintf("RX:  %d KB", s.Rx>>10),
		fmt.Sprintf("TX:  %d KB", s.Tx>>10),
	}
}

func formatUptime(d time.Duration) string {
	var (
		seconds = int(d / time.Second)
		days    = seconds / 86400
		hours   = (seconds % 86400) / 3600
		minutes = (seconds % 3600) / 60
	)
	if days > 0 {
		return fmt.Sprintf("%dd %02dh %02dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%02dh %02dm", hours, minutes)
	}
	return fmt.Sprintf("%02dm", minutes)
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

// showStats renders the status screen, one line per page. Only the changed window is sent.
func showStats(dev *oled.Dev) error {
	s, err := collectStats()
	if err != nil {
		return err
	}
	if err = dev.Clear(); err != nil {
		return err
	}
	for i, line := range s.lines() {
		if err = dev.Text(line, 0, i*8, font.Small); err != nil {
			return err
		}
	}
	return dev.Update()
}

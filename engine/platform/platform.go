package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// OS identifies the host operating system family.
type OS uint8

const (
	UnknownOS OS = iota
	Windows
	Linux
	MacOS
)

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	}
	return "unknown"
}

// Arch identifies the CPU architecture.
type Arch uint8

const (
	UnknownArch Arch = iota
	AMD64
	ARM64
	ARM32
)

func (a Arch) String() string {
	switch a {
	case AMD64:
		return "x86_64"
	case ARM64:
		return "arm64"
	case ARM32:
		return "arm32"
	}
	return "unknown"
}

// HardwareInfo is the detected host profile the demo tunes itself by.
type HardwareInfo struct {
	OS       OS
	Arch     Arch
	CPUCount int
	CPUMHz   float64
	MemTotal uint64
	MemAvail uint64
	HighPerf bool
}

// Detect probes the host. Probe failures degrade to a conservative
// single-core profile instead of failing, so the demo always starts.
func Detect() HardwareInfo {
	hw := HardwareInfo{
		OS:   detectOS(runtime.GOOS),
		Arch: detectArch(runtime.GOARCH),
	}

	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		log.Printf("platform: cpu count probe failed (%v), assuming 1", err)
		count = 1
	}
	hw.CPUCount = count

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		hw.CPUMHz = infos[0].Mhz
	} else {
		log.Printf("platform: cpu info probe failed (%v), assuming 1000 MHz", err)
		hw.CPUMHz = 1000
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		hw.MemTotal = vm.Total
		hw.MemAvail = vm.Available
	} else {
		log.Printf("platform: memory probe failed (%v), assuming 1 GiB", err)
		hw.MemTotal = 1 << 30
		hw.MemAvail = 512 << 20
	}

	hw.HighPerf = highPerf(hw.CPUCount, hw.CPUMHz, hw.MemTotal)
	return hw
}

func detectOS(goos string) OS {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	}
	return UnknownOS
}

func detectArch(goarch string) Arch {
	switch goarch {
	case "amd64":
		return AMD64
	case "arm64":
		return ARM64
	case "arm":
		return ARM32
	}
	return UnknownArch
}

// highPerf is the tier heuristic: at least 4 logical cores at 2 GHz
// with 8 GiB of memory.
func highPerf(cores int, mhz float64, memTotal uint64) bool {
	return cores >= 4 && mhz >= 2000 && memTotal >= 8<<30
}

// Summary renders the info block shown on the platform scene.
func Summary(hw HardwareInfo) string {
	return fmt.Sprintf(
		"Platform: %s\nArchitecture: %s\nCPU Cores: %d\nCPU Frequency: %.1f MHz\nMemory: %.1f GB\nHigh Performance: %t",
		hw.OS, hw.Arch, hw.CPUCount, hw.CPUMHz,
		float64(hw.MemTotal)/(1<<30), hw.HighPerf,
	)
}

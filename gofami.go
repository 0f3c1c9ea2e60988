// This file is part of Gofami.
//
// Gofami is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gofami is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gofami.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/gofami/gofami/cartridgeloader"
	"github.com/gofami/gofami/disassembly"
	"github.com/gofami/gofami/govern"
	"github.com/gofami/gofami/hardware"
	"github.com/gofami/gofami/hardware/memory/memorymap"
	"github.com/gofami/gofami/hardware/preferences"
	"github.com/gofami/gofami/logger"
	"github.com/gofami/gofami/modalflag"
	"github.com/gofami/gofami/paths"
	"github.com/gofami/gofami/prefs"
	"github.com/gofami/gofami/statsview"
	"github.com/gofami/gofami/version"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. the return value is
// the exit status of the program.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "DISASM":
		err = disasm(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to the RUN and STEP modes.
type machineOptions struct {
	log       *bool
	prefs     *string
	statsview *bool
	memviz    *string
	load      *string
}

func addMachineOptions(md *modalflag.Modes) machineOptions {
	opts := machineOptions{
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:  md.AddString("prefs", "", "preferences for this session only. eg. \"hardware.randstate::true\""),
		memviz: md.AddString("memviz", "", "write graphviz description of the machine state on exit"),
		load:   md.AddString("load", "", "load machine state from file after attaching cartridge"),
	}
	if statsview.Available() {
		opts.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return opts
}

// newMachine creates the machine and attaches the cartridge named on the
// command line.
func newMachine(md *modalflag.Modes, opts machineOptions) (*hardware.Machine, error) {
	if *opts.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if opts.statsview != nil && *opts.statsview {
		statsview.Launch(os.Stdout)
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program image required for %s mode", md)
	case 1:
		filename = md.GetArg(0)
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if err := paths.CreateBasePath(); err != nil {
		return nil, err
	}

	hwprefs, err := preferences.NewPreferences(paths.ResourcePath(prefs.DefaultPrefsFile))
	if *opts.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gofami", "unused preferences: %s", unused)
		}
	}
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(hwprefs)
	if err != nil {
		return nil, err
	}

	err = m.AttachCartridge(cartridgeloader.NewLoader(filename))
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "gofami", "%s mode: %s", md, m.Cart)

	if *opts.load != "" {
		f, err := os.Open(*opts.load)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := m.LoadState(f); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// finish writes the optional outputs requested on the command line.
func finish(m *hardware.Machine, opts machineOptions, save string) error {
	if save != "" {
		f, err := os.Create(save)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := m.SaveState(f); err != nil {
			return err
		}
	}

	if *opts.memviz != "" {
		f, err := os.Create(*opts.memviz)
		if err != nil {
			return err
		}
		defer f.Close()

		memviz.Map(f, m.Snapshot())
	}

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("RUN mode executes the program image until it halts, the instruction\nlimit is reached or ctrl-c is pressed.")

	opts := addMachineOptions(md)
	limit := md.AddUint64("limit", 0, "number of instructions to execute (0 = no limit)")
	save := md.AddString("save", "", "save machine state to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md, opts)
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var interrupted bool
	performanceFilter := 0

	err = m.RunForInstructionCount(*limit, func(_ uint64) (govern.State, error) {
		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-intChan:
				interrupted = true
				return govern.Ending, nil
			default:
			}
		}
		return govern.Running, nil
	})

	summary(m, interrupted, err)

	return finish(m, opts, *save)
}

func summary(m *hardware.Machine, interrupted bool, err error) {
	switch {
	case err != nil:
		fmt.Printf("halted: %v\n", err)
	case interrupted:
		fmt.Println("interrupted")
	}
	fmt.Printf("%d instructions, %d cycles\n", m.Instructions, m.CPU.TotalCycles)
	fmt.Println(m.CPU.Snapshot())
}

func step(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(stepHelp)

	opts := addMachineOptions(md)
	history := md.AddInt("history", 100, "number of instructions that can be stepped back")
	save := md.AddString("save", "", "save machine state to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md, opts)
	if err != nil {
		return err
	}

	if *history > 0 {
		m.RecordHistory(*history)
	}

	input, err := openKeyReader(os.Stdin)
	if err != nil {
		return err
	}
	defer input.Close()

	err = stepLoop(m, input, os.Stdout)
	if err != nil {
		return err
	}

	return finish(m, opts, *save)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	grep := md.AddString("grep", "", "only output lines that contain the search string")
	caseSensitive := md.AddBool("case", false, "search is case sensitive")
	origin := md.AddInt("origin", int(memorymap.OriginPRGROM), "address to start disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *origin < int(memorymap.OriginPRGRAM) || *origin > int(memorymap.MemtopPRGROM) {
		return fmt.Errorf("origin (%#04x) is outside the PRG address space", *origin)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode", md)
	case 1:
		m, err := hardware.NewMachine(nil)
		if err != nil {
			return err
		}

		err = m.AttachCartridge(cartridgeloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}

		dsm, err := disassembly.FromMemory(m.Mem, uint16(*origin), memorymap.MemtopPRGROM)
		if err != nil {
			return err
		}

		if *grep != "" {
			_, err = dsm.Grep(os.Stdout, *grep, *caseSensitive)
			return err
		}

		return dsm.Write(os.Stdout)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

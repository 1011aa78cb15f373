// Command scope-shell is an interactive console for DS1000Z-family
// oscilloscopes.
//
// Usage:
//
//	scope-shell [flags]
//
// Flags:
//
//	-addr string      Instrument address (host or host:port); connects at startup
//	-log string       Append the SCPI traffic to a CBOR log file
//	-timeout duration I/O timeout for instrument commands (default 5s)
//
// Interactive Commands:
//
//	discover [seconds]      - Browse the local network for instruments
//	connect <addr>          - Connect to an instrument
//	disconnect              - Close the connection
//	idn                     - Show the instrument identification
//	status                  - Show trigger status and sample rate
//	run | stop | single     - Acquisition control
//	auto                    - Autoscale
//	ch <n>                  - Show channel settings
//	ch <n> on|off           - Enable or disable a channel
//	ch <n> scale <v/div>    - Set the vertical scale
//	meas <item> [src...]    - Read a measurement (e.g. meas FREQ CHAN1)
//	raw <command>           - Send a raw command
//	query <command?>        - Send a raw query and print the response
//	quit                    - Exit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/rigol-kit/rigol-go/pkg/discovery"
	"github.com/rigol-kit/rigol-go/pkg/log"
	"github.com/rigol-kit/rigol-go/pkg/scope"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

type config struct {
	Addr    string
	LogFile string
	Timeout time.Duration
}

// shell holds the interactive session state.
type shell struct {
	cfg    config
	rl     *readline.Instance
	logger *log.FileLogger
	tr     *transport.TCPTransport
	inst   *scope.Instrument
}

func main() {
	var cfg config
	flag.StringVar(&cfg.Addr, "addr", "", "Instrument address (host or host:port)")
	flag.StringVar(&cfg.LogFile, "log", "", "Append the SCPI traffic to a CBOR log file")
	flag.DurationVar(&cfg.Timeout, "timeout", transport.DefaultTimeout, "I/O timeout for instrument commands")
	flag.Parse()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "scope> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create readline: %v\n", err)
		os.Exit(1)
	}

	s := &shell{cfg: cfg, rl: rl}

	if cfg.LogFile != "" {
		logger, err := log.NewFileLogger(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		s.logger = logger
		defer logger.Close()
	}

	if cfg.Addr != "" {
		if err := s.connect(cfg.Addr); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	s.run()
}

func (s *shell) run() {
	defer s.rl.Close()
	defer s.disconnect()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "discover", "d":
			s.cmdDiscover(args)

		case "connect":
			if len(args) != 1 {
				s.printf("usage: connect <addr>")
				continue
			}
			if err := s.connect(args[0]); err != nil {
				s.printf("%v", err)
			}

		case "disconnect":
			s.disconnect()

		case "idn":
			s.cmdIdentity()

		case "status":
			s.cmdStatus()

		case "run":
			s.invoke(func(i *scope.Instrument) error { return i.Run.Invoke() })

		case "stop":
			s.invoke(func(i *scope.Instrument) error { return i.Stop.Invoke() })

		case "single":
			s.invoke(func(i *scope.Instrument) error { return i.Single.Invoke() })

		case "auto":
			s.invoke(func(i *scope.Instrument) error { return i.Autoscale.Invoke() })

		case "ch", "channel":
			s.cmdChannel(args)

		case "meas", "m":
			s.cmdMeasure(args)

		case "raw":
			s.cmdRaw(args)

		case "query", "q":
			s.cmdQuery(args)

		case "quit", "exit":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			s.printf("Unknown command: %s (type 'help' for commands)", cmd)
		}
	}
}

func (s *shell) printf(format string, args ...any) {
	fmt.Fprintf(s.rl.Stdout(), format+"\n", args...)
}

func (s *shell) connect(addr string) error {
	s.disconnect()

	opts := []transport.Option{transport.WithTimeout(s.cfg.Timeout)}
	if s.logger != nil {
		opts = append(opts, transport.WithLogger(s.logger))
	}

	tr, err := transport.Dial(addr, opts...)
	if err != nil {
		return err
	}
	inst, err := scope.New(tr)
	if err != nil {
		tr.Close()
		return err
	}

	s.tr = tr
	s.inst = inst
	id := inst.Identity()
	s.printf("Connected to %s %s (firmware %s)", id.Vendor, id.Model, id.Firmware)
	return nil
}

func (s *shell) disconnect() {
	if s.inst != nil {
		s.inst.Close()
		s.inst = nil
		s.tr = nil
		s.printf("Disconnected")
	}
}

func (s *shell) connected() bool {
	if s.inst == nil {
		s.printf("Not connected (use 'connect <addr>')")
		return false
	}
	return true
}

func (s *shell) invoke(fn func(*scope.Instrument) error) {
	if !s.connected() {
		return
	}
	if err := fn(s.inst); err != nil {
		s.printf("%v", err)
	}
}

func (s *shell) cmdDiscover(args []string) {
	seconds := 5
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			s.printf("usage: discover [seconds]")
			return
		}
		seconds = n
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(seconds)*time.Second)
	defer cancel()

	browser := discovery.NewBrowser(discovery.BrowserConfig{})
	results, err := browser.Browse(ctx)
	if err != nil {
		s.printf("%v", err)
		return
	}

	s.printf("Browsing for %ds...", seconds)
	found := 0
	for svc := range results {
		found++
		s.printf("  %-28s %-10s %s", svc.InstanceName, svc.Model, svc.Addr())
	}
	if found == 0 {
		s.printf("No instruments found")
	}
}

func (s *shell) cmdIdentity() {
	if !s.connected() {
		return
	}
	id := s.inst.Identity()
	s.printf("Vendor:   %s", id.Vendor)
	s.printf("Model:    %s", id.Model)
	s.printf("Serial:   %s", id.Serial)
	s.printf("Firmware: %s", id.Firmware)
	s.printf("Profile:  %s (%d channels, %d MHz)",
		s.inst.Profile().Model, s.inst.Channels(), s.inst.Profile().BandwidthMHz)
}

func (s *shell) cmdStatus() {
	if !s.connected() {
		return
	}
	st, err := s.inst.Trigger.Status.Get()
	if err != nil {
		s.printf("%v", err)
		return
	}
	sr, err := s.inst.Acquire.SampleRate.Get()
	if err != nil {
		s.printf("%v", err)
		return
	}
	s.printf("Trigger: %s, sample rate: %.4e Sa/s", st, sr)
}

func (s *shell) cmdChannel(args []string) {
	if !s.connected() {
		return
	}
	if len(args) == 0 {
		s.printf("usage: ch <n> [on|off|scale <v/div>]")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		s.printf("usage: ch <n> [on|off|scale <v/div>]")
		return
	}
	ch, err := s.inst.Channel(n)
	if err != nil {
		s.printf("%v", err)
		return
	}

	if len(args) == 1 {
		s.showChannel(ch)
		return
	}

	switch strings.ToLower(args[1]) {
	case "on":
		err = ch.Display.Set(true)
	case "off":
		err = ch.Display.Set(false)
	case "scale":
		if len(args) != 3 {
			s.printf("usage: ch <n> scale <v/div>")
			return
		}
		var v float64
		if v, err = strconv.ParseFloat(args[2], 64); err != nil {
			s.printf("not a number: %s", args[2])
			return
		}
		err = ch.Scale.Set(v)
	default:
		s.printf("usage: ch <n> [on|off|scale <v/div>]")
		return
	}
	if err != nil {
		s.printf("%v", err)
	}
}

func (s *shell) showChannel(ch *scope.Channel) {
	on, err := ch.Display.Get()
	if err != nil {
		s.printf("%v", err)
		return
	}
	scale, err := ch.Scale.Get()
	if err != nil {
		s.printf("%v", err)
		return
	}
	coupling, err := ch.Coupling.Get()
	if err != nil {
		s.printf("%v", err)
		return
	}
	probe, err := ch.Probe.Get()
	if err != nil {
		s.printf("%v", err)
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	s.printf("CH%d: %s, %.4e V/div, %s coupling, %gx probe", ch.Index(), state, scale, coupling, probe)
}

// measItems maps command names to measurement items, keyed by the
// instrument's own tokens.
var measItems = map[string]scope.MeasureItem{
	"VMAX": scope.ItemVMax,
	"VMIN": scope.ItemVMin,
	"VPP":  scope.ItemVPP,
	"VAVG": scope.ItemVAverage,
	"VRMS": scope.ItemVRMS,
	"FREQ": scope.ItemFrequency,
	"PER":  scope.ItemPeriod,
	"RTIM": scope.ItemRiseTime,
	"FTIM": scope.ItemFallTime,
	"PDUT": scope.ItemPositiveDutyCycle,
	"RDEL": scope.ItemRisingEdgeDelay,
	"FDEL": scope.ItemFallingEdgeDelay,
}

var measSources = map[string]scope.Source{
	"CHAN1": scope.SourceChannel1,
	"CHAN2": scope.SourceChannel2,
	"CHAN3": scope.SourceChannel3,
	"CHAN4": scope.SourceChannel4,
	"MATH":  scope.SourceMath,
}

func (s *shell) cmdMeasure(args []string) {
	if !s.connected() {
		return
	}
	if len(args) == 0 {
		s.printf("usage: meas <item> [source...] (e.g. meas FREQ CHAN1)")
		return
	}
	item, ok := measItems[strings.ToUpper(args[0])]
	if !ok {
		s.printf("unknown item %q", args[0])
		return
	}
	var srcs []scope.Source
	for _, a := range args[1:] {
		src, ok := measSources[strings.ToUpper(a)]
		if !ok {
			s.printf("unknown source %q", a)
			return
		}
		srcs = append(srcs, src)
	}

	v, err := s.inst.Measure.Read(item, srcs...)
	if err != nil {
		s.printf("%v", err)
		return
	}
	s.printf("%s = %.4e", item, v)
}

func (s *shell) cmdRaw(args []string) {
	if !s.connected() {
		return
	}
	if len(args) == 0 {
		s.printf("usage: raw <command>")
		return
	}
	if err := s.tr.Write(strings.Join(args, " ")); err != nil {
		s.printf("%v", err)
	}
}

func (s *shell) cmdQuery(args []string) {
	if !s.connected() {
		return
	}
	if len(args) == 0 {
		s.printf("usage: query <command?>")
		return
	}
	resp, err := s.tr.Query(strings.Join(args, " "))
	if err != nil {
		s.printf("%v", err)
		return
	}
	s.printf("%s", resp)
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
Oscilloscope Commands:
  Connection:
    discover [seconds]     - Browse the local network for instruments
    connect <addr>         - Connect to an instrument (host or host:port)
    disconnect             - Close the connection
    idn                    - Show the instrument identification

  Acquisition:
    run | stop | single    - Acquisition control
    auto                   - Autoscale
    status                 - Trigger status and sample rate

  Channels and measurements:
    ch <n>                 - Show channel settings
    ch <n> on|off          - Enable or disable a channel
    ch <n> scale <v/div>   - Set the vertical scale
    meas <item> [src...]   - Read a measurement (e.g. meas FREQ CHAN1)

  Escape hatch:
    raw <command>          - Send a raw command
    query <command?>       - Send a raw query

  quit                     - Exit`)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/big"
	"math/rand/v2"
	"os"

	"columns/columns"
	"columns/terminal"

	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[24;0H\n\r\033[?25h"
)

func main() {
	var (
		addr     = flag.String("addr", "localhost:9000", "server address for online play")
		name     = flag.String("name", "player", "player name shown to the opponent")
		advisor  = flag.Bool("advisor", false, "suggest a placement for every triplet")
		noShadow = flag.Bool("noshadow", false, "disable the drop shadow")
		seed     = flag.String("seed", "", "decimal 128-bit seed for a reproducible color sequence")
	)
	flag.Parse()

	hi, lo, err := parseSeed(*seed)
	if err != nil {
		log.Fatalf("invalid seed: %v", err)
	}

	logger := newLogger()
	logger.Info("game starting", slog.String("seed", formatSeed(hi, lo)))

	restore := startRawConsole()
	defer restore()

	t, err := terminal.New(logger, &terminal.Options{
		NoShadow: *noShadow,
		Advisor:  *advisor,
		Address:  *addr,
		Name:     *name,
		Colors:   columns.NewColorSource(hi, lo),
	})
	if err != nil {
		restore()
		log.Fatalf("unable to start: %v", err)
	}
	t.Start()
}

// parseSeed reads a decimal seed of up to 128 bits and splits it into
// the two halves the color source is seeded with. An empty seed draws a
// random one, so every run stays replayable through the log.
func parseSeed(s string) (hi, lo uint64, err error) {
	if s == "" {
		return rand.Uint64(), rand.Uint64(), nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, 0, fmt.Errorf("%q is not a decimal number", s)
	}
	if n.Sign() < 0 || n.BitLen() > 128 {
		return 0, 0, fmt.Errorf("%q is outside the 128-bit range", s)
	}
	lo = n.Uint64()
	hi = new(big.Int).Rsh(n, 64).Uint64()
	return hi, lo, nil
}

func formatSeed(hi, lo uint64) string {
	n := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
	n.Or(n, new(big.Int).SetUint64(lo))
	return n.String()
}

func newLogger() *slog.Logger {
	f, err := os.OpenFile("columns.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("unable to open log file: %v", err)
	}
	return slog.New(slog.NewTextHandler(f, nil))
}

func startRawConsole() func() {
	fmt.Print(hideCursor)
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Error setting terminal to raw mode: %v", err)
	}

	return func() {
		if err := term.Restore(int(os.Stdin.Fd()), oldState); err != nil {
			log.Fatalf("unable to restore the terminal original state: %v", err)
		}
		fmt.Print(showCursor)
	}
}

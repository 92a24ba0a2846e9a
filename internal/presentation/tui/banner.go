package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the museum's ASCII art banner. The line colors run
// hot to cool, blue giant down to red dwarf.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	s1 := termenv.String(" _      _   __          ____                                    _ ").Foreground(p.Color("#9bb0ff"))
	s2 := termenv.String("| |    (_) / _|  ___   | __ )   ___  _   _   ___   _ __   __| |").Foreground(p.Color("#c0d0f8"))
	s3 := termenv.String("| |    | || |_  / _ \\  |  _ \\  / _ \\| | | | / _ \\ | '_ \\  / _` |").Foreground(p.Color("#f0e8d8"))
	s4 := termenv.String("| |___ | ||  _||  __/  | |_) ||  __/| |_| || (_) || | | || (_| |").Foreground(p.Color("#ffd27d"))
	s5 := termenv.String("|_____||_||_|   \\___|  |____/  \\___| \\__, | \\___/ |_| |_| \\__,_|").Foreground(p.Color("#ffa65c"))
	s6 := termenv.String("                                     |___/").Foreground(p.Color("#ff6b4a"))
	tag := termenv.String(fmt.Sprintf("  an interactive museum of life beyond Earth  ·  %s", version)).Faint()

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
	fmt.Println(tag)
	fmt.Println()
}

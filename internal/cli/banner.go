package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const banner = "" +
	" __  __          _ _       ____  _               _            _    \n" +
	"|  \\/  | ___  __| (_) __ _/ ___|| |__   ___ _ __| | ___   ___| | __\n" +
	"| |\\/| |/ _ \\/ _` | |/ _` \\___ \\| '_ \\ / _ \\ '__| |/ _ \\ / __| |/ /\n" +
	"| |  | |  __/ (_| | | (_| |___) | | | |  __/ |  | | (_) | (__|   < \n" +
	"|_|  |_|\\___|\\__,_|_|\\__,_|____/|_| |_|\\___|_|  |_|\\___/ \\___|_|\\_\\\n"

var bannerColor = color.New(color.FgMagenta, color.Bold)

// Banner returns the ASCII logo, coloured when colour output is enabled.
func Banner() string {
	return bannerColor.Sprint(banner)
}

func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, Banner())
}

func Usage(program string, w io.Writer) int {
	PrintBanner(w)
	fmt.Fprintf(w, "Usage: \"%s [flags] FileName1 [FileName2...]\"\n", program)
	fmt.Fprintf(w, "\"%s --help\" for displaying more information\n", program)
	return exitError
}

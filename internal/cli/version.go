package cli

import (
	"fmt"
	"io"
	"strings"
)

const AppName = "mediasherlock"

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func FormatVersion(version string) string {
	if version == "" || version == "dev" {
		return "dev"
	}
	return "v" + strings.TrimPrefix(version, "v")
}

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "%s, %s\n", AppName, FormatVersion(appVersion))
}

package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/MKhiriev/go-envjson/internal/converter"
	"github.com/MKhiriev/go-envjson/models"
)

type dotenvRenderer struct {
	selector
}

// Render writes one KEY=VALUE line per entry. Values are quoted only when a
// shell or dotenv loader would otherwise misread them.
func (r *dotenvRenderer) Render(w io.Writer, ns *models.Namespace) error {
	bw := bufio.NewWriter(w)
	for _, e := range r.entries(ns) {
		bw.WriteString(e.Key)
		bw.WriteByte('=')
		bw.WriteString(quoteDotenv(converter.Stringify(e.Value)))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

var dotenvEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"$", `\$`,
	"`", "\\`",
	"\n", `\n`,
	"\r", `\r`,
)

func quoteDotenv(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\r\n\"'`$#\\=") {
		return s
	}
	return `"` + dotenvEscaper.Replace(s) + `"`
}

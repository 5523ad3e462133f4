package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/sweeney/lampd/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"modeOrUnknown": func(s string) string {
		if s == "" {
			return "?"
		}
		return s
	},
	"onOff": func(b bool) string {
		if b {
			return "ON"
		}
		return "OFF"
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="2">
<title>lampd</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.on { color: green; font-weight: bold; }
.off { color: #888; }
.dark { color: #336; }
.connected { color: green; }
.disconnected { color: red; }
</style>
</head>
<body>
<h1>lampd</h1>
<table>
<tr><th>Mode</th><td>{{modeOrUnknown .Mode}}</td></tr>
<tr><th>LDR reading</th><td>{{.SensorRaw}}{{if .Dark}} <span class="dark">(dark)</span>{{end}}</td></tr>
<tr><th>LEDs on</th><td>{{.OutputsOn}} / {{.Config.Outputs}}</td></tr>
<tr><th>Auto apply</th><td class="{{if .AutoEnabled}}on{{else}}off{{end}}">{{onOff .AutoEnabled}}</td></tr>
<tr><th>Forced on</th><td class="{{if .ForceOn}}on{{else}}off{{end}}">{{onOff .ForceOn}}</td></tr>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Mode changes</th><td>{{.Counts.ModeChanges}}</td></tr>
<tr><th>Button presses</th><td>{{.Counts.ButtonPresses}}</td></tr>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
</table>
<p><a href="/index.json">JSON</a></p>
</body>
</html>`

func renderHTML(w io.Writer, snap status.Snapshot) {
	_ = indexTmpl.Execute(w, snap)
}

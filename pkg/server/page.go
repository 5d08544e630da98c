package server

import (
	"fmt"
	"strings"

	"github.com/TheNexusGroup/simplistic/pkg/render"
)

// pageShell wraps a rendered demo fragment in a full HTML page with the
// thin client. The client forwards click and input events on data-sid
// nodes and swaps the #app fragment on every server push.
const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
li.done label { text-decoration: line-through; color: #888; }
.milestone { color: #2a7d2a; font-weight: bold; }
</style>
</head>
<body>
%s
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "%s");
  ws.onmessage = function (e) {
    document.getElementById("app").outerHTML = e.data;
  };
  function target(e) {
    var t = e.target.closest("[data-sid]");
    return t ? t.getAttribute("data-sid") : null;
  }
  document.addEventListener("click", function (e) {
    var sid = target(e);
    if (!sid || ws.readyState !== WebSocket.OPEN) return;
    ws.send(JSON.stringify({ type: "click", target: sid }));
  });
  document.addEventListener("input", function (e) {
    var sid = target(e);
    if (!sid || ws.readyState !== WebSocket.OPEN) return;
    ws.send(JSON.stringify({ type: "input", target: sid, value: e.target.value }));
  });
})();
</script>
</body>
</html>
`

// demoPage renders a demo instance into the page shell.
func demoPage(title, fragment, wsPath string) string {
	return fmt.Sprintf(pageShell, title, fragment, wsPath)
}

// indexPage lists the registered demos.
func indexPage(demos []Demo) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Simplistic Demos</title></head>
<body>
<h1>Simplistic Demos</h1>
<ul>
`)
	for _, d := range demos {
		fmt.Fprintf(&b, `<li><a href="/demos/%s">%s</a></li>`+"\n", d.Name, htmlEscape(d.Title))
	}
	b.WriteString("</ul>\n</body>\n</html>\n")
	return b.String()
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// newRenderer builds the renderer used for pages and fragments.
func newRenderer(config *ServerConfig) *render.Renderer {
	return render.NewRenderer(render.RendererConfig{Pretty: config.Pretty})
}

package render

// clientScript connects to the live endpoint, replaces the root element on
// every render frame and forwards clicks on elements marked data-on-click.
const clientScript = `(function () {
  var cfg = window.__TALLY__;
  var root = document.getElementById(cfg.root);
  var scheme = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(scheme + "//" + location.host + cfg.live);

  ws.onmessage = function (e) {
    var msg = JSON.parse(e.data);
    if (msg.type === "render") {
      root.innerHTML = msg.html;
    } else if (msg.type === "error") {
      console.warn("tally:", msg.code, msg.message);
    }
  };

  document.addEventListener("click", function (e) {
    var el = e.target.closest("[data-on-click]");
    if (!el || ws.readyState !== WebSocket.OPEN) {
      return;
    }
    e.preventDefault();
    ws.send(JSON.stringify({ type: "click", hid: el.getAttribute("data-hid") }));
  });
})();
`

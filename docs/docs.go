package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var Spec []byte

const uiPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Purchase Order API</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
window.ui = SwaggerUIBundle({ url: "/api/v1/swagger.json", dom_id: "#swagger-ui" });
</script>
</body>
</html>`

func JSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(Spec)
}

func UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(uiPage))
}

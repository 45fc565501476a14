package f7

// Bundled toolkit asset paths. The preview server (and any host app)
// serves the toolkit distribution under /assets; pin the version in
// the path so caches roll over with upgrades.
const (
	toolkitVersion = "8.3.4"
	iconsVersion   = "5.0.5"

	assetBase = "/assets"
)

// Stylesheets returns the toolkit stylesheet links in load order.
func Stylesheets() []*Node {
	return []*Node{
		stylesheet(assetBase + "/framework7-" + toolkitVersion + "/framework7.bundle.min.css"),
		stylesheet(assetBase + "/framework7-icons-" + iconsVersion + "/framework7-icons.css"),
		stylesheet(assetBase + "/app.css"),
	}
}

// Scripts returns the toolkit script tags in dependency order. They
// belong at the end of body, before InitScript.
func Scripts() []*Node {
	return []*Node{
		ScriptEl(Attr("src", assetBase+"/framework7-"+toolkitVersion+"/framework7.bundle.min.js")),
	}
}

func stylesheet(href string) *Node {
	return LinkEl(Attr("rel", "stylesheet"), Attr("href", href))
}

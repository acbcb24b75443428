package render

// SystemRenderer draws one layer of the snapshot
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

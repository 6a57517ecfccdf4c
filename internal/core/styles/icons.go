package styles

// Thread glyphs. Plain unicode so no patched font is required.
var (
	IconComment  = "💬"
	IconUpvote   = "▲"
	IconDownvote = "▼"
	IconReply    = "↳"
	IconCursor   = "›"
	IconActive   = "●"

	IconToastInfo    = "ℹ"
	IconToastSuccess = "✔"
	IconToastWarning = "⚠"
)

// Tree connectors drawn in front of nested replies.
var (
	TreeBranch = "├"
	TreeLast   = "└"
	TreePipe   = "│"
	TreeDash   = "─"
)

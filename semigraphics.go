package flowview

// Semigraphics provides easy access to Unicode characters for drawing.
// Using strings with \u escapes to keep the source ASCII-safe.
const (
	// General Punctuation U+2000-U+206F
	SemigraphicsHorizontalEllipsis = "…" // …

	// Box Drawing U+2500-U+257F
	BoxDrawingsLightHorizontal         = "─" // ─
	BoxDrawingsHeavyHorizontal         = "━" // ━
	BoxDrawingsLightVertical           = "│" // │
	BoxDrawingsHeavyVertical           = "┃" // ┃
	BoxDrawingsLightDownAndRight       = "┌" // ┌
	BoxDrawingsHeavyDownAndRight       = "┏" // ┏
	BoxDrawingsLightDownAndLeft        = "┐" // ┐
	BoxDrawingsHeavyDownAndLeft        = "┓" // ┓
	BoxDrawingsLightUpAndRight         = "└" // └
	BoxDrawingsHeavyUpAndRight         = "┗" // ┗
	BoxDrawingsLightUpAndLeft          = "┘" // ┘
	BoxDrawingsHeavyUpAndLeft          = "┛" // ┛
	BoxDrawingsLightVerticalAndRight   = "├" // ├
	BoxDrawingsHeavyVerticalAndRight   = "┣" // ┣
	BoxDrawingsLightVerticalAndLeft    = "┤" // ┤
	BoxDrawingsHeavyVerticalAndLeft    = "┫" // ┫
	BoxDrawingsLightDownAndHorizontal  = "┬" // ┬
	BoxDrawingsHeavyDownAndHorizontal  = "┳" // ┳
	BoxDrawingsLightUpAndHorizontal    = "┴" // ┴
	BoxDrawingsHeavyUpAndHorizontal    = "┻" // ┻
	BoxDrawingsDoubleHorizontal        = "═" // ═
	BoxDrawingsDoubleVertical          = "║" // ║
	BoxDrawingsDoubleDownAndRight      = "╔" // ╔
	BoxDrawingsDoubleDownAndLeft       = "╗" // ╗
	BoxDrawingsDoubleUpAndRight        = "╚" // ╚
	BoxDrawingsDoubleUpAndLeft         = "╝" // ╝
	BoxDrawingsDoubleVerticalAndRight  = "╠" // ╠
	BoxDrawingsDoubleVerticalAndLeft   = "╣" // ╣
	BoxDrawingsDoubleDownAndHorizontal = "╦" // ╦
	BoxDrawingsDoubleUpAndHorizontal   = "╩" // ╩
	BoxDrawingsLightArcDownAndRight    = "╭" // ╭
	BoxDrawingsLightArcDownAndLeft     = "╮" // ╮
	BoxDrawingsLightArcUpAndLeft       = "╯" // ╯
	BoxDrawingsLightArcUpAndRight      = "╰" // ╰
)

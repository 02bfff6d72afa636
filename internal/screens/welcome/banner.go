package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skinfinder/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗  ██╗██╗███╗   ██╗███████╗██╗███╗   ██╗██████╗ ███████╗██████╗
 ██╔════╝██║ ██╔╝██║████╗  ██║██╔════╝██║████╗  ██║██╔══██╗██╔════╝██╔══██╗
 ███████╗█████╔╝ ██║██╔██╗ ██║█████╗  ██║██╔██╗ ██║██║  ██║█████╗  ██████╔╝
 ╚════██║██╔═██╗ ██║██║╚██╗██║██╔══╝  ██║██║╚██╗██║██║  ██║██╔══╝  ██╔══██╗
 ███████║██║  ██╗██║██║ ╚████║██║     ██║██║ ╚████║██████╔╝███████╗██║  ██║
 ╚══════╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝╚═╝     ╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "S K I N F I N D E R"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 78

// RenderBanner returns the banner styled in the primary color, or a
// compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

package icons

// Mapping pairs a FontAwesome class name with its replacement emoji.
type Mapping struct {
	Class string
	Emoji string
}

// Table is an ordered icon mapping. Order is replacement precedence: the
// rewriter applies entries front to back, so an earlier entry wins when two
// class names could match the same markup (e.g. fa-sync before fa-sync-alt).
type Table []Mapping

// Default returns the built-in FontAwesome → emoji table.
// Classes are unique; the returned slice must be treated as read-only.
func Default() Table {
	return Table{
		// Navigation & actions
		{"fa-arrow-left", "←"},
		{"fa-arrow-right", "→"},
		{"fa-arrow-up", "↑"},
		{"fa-arrow-down", "↓"},
		{"fa-chevron-left", "‹"},
		{"fa-chevron-right", "›"},
		{"fa-times", "✖️"},
		{"fa-times-circle", "❌"},
		{"fa-check", "✓"},
		{"fa-check-circle", "✅"},
		{"fa-plus", "➕"},
		{"fa-minus", "➖"},
		{"fa-minus-circle", "➖"},

		// Common UI
		{"fa-save", "💾"},
		{"fa-edit", "✏️"},
		{"fa-trash", "🗑️"},
		{"fa-trash-alt", "🗑️"},
		{"fa-search", "🔍"},
		{"fa-filter", "🔍"},
		{"fa-sync", "🔄"},
		{"fa-sync-alt", "🔄"},
		{"fa-refresh", "🔄"},
		{"fa-redo", "🔄"},
		{"fa-spinner", "⏳"},
		{"fa-cog", "⚙️"},
		{"fa-eye", "👁️"},
		{"fa-download", "⬇️"},
		{"fa-upload", "⬆️"},
		{"fa-file-upload", "📤"},
		{"fa-play", "▶️"},
		{"fa-circle", "🔵"},

		// Info & status
		{"fa-info-circle", "ℹ️"},
		{"fa-question-circle", "❓"},
		{"fa-exclamation-circle", "⚠️"},
		{"fa-exclamation-triangle", "⚠️"},
		{"fa-lightbulb", "💡"},
		{"fa-bell", "🔔"},

		// Time & calendar
		{"fa-clock", "⏱️"},
		{"fa-calendar", "📅"},
		{"fa-calendar-plus", "📅"},
		{"fa-calendar-alt", "📅"},
		{"fa-calendar-check", "✅"},
		{"fa-history", "📜"},
		{"fa-stopwatch", "⏱️"},

		// Communication
		{"fa-envelope", "✉️"},
		{"fa-phone", "📞"},
		{"fa-comments", "💬"},
		{"fa-comment", "💬"},
		{"fa-paper-plane", "📤"},
		{"fa-reply", "↩️"},
		{"fa-inbox", "📥"},

		// People & users
		{"fa-user", "👤"},
		{"fa-users", "👥"},
		{"fa-user-circle", "👤"},
		{"fa-user-check", "✅"},

		// Business & office
		{"fa-building", "🏢"},
		{"fa-briefcase", "💼"},
		{"fa-handshake", "🤝"},
		{"fa-folder", "📁"},
		{"fa-folder-open", "📂"},
		{"fa-folder-plus", "📁"},
		{"fa-file-alt", "📄"},
		{"fa-file-contract", "📋"},

		// Tech & development
		{"fa-robot", "🤖"},
		{"fa-laptop-code", "💻"},
		{"fa-database", "💾"},
		{"fa-server", "🖥️"},
		{"fa-terminal", "💻"},
		{"fa-code", "💻"},

		// Security
		{"fa-shield-alt", "🛡️"},
		{"fa-lock", "🔒"},
		{"fa-key", "🔑"},

		// Content & media
		{"fa-image", "🖼️"},
		{"fa-music", "🎵"},
		{"fa-microphone", "🎤"},
		{"fa-video", "🎥"},
		{"fa-newspaper", "📰"},

		// Location & map
		{"fa-map-marker-alt", "📍"},
		{"fa-map-signs", "🗺️"},
		{"fa-globe", "🌍"},

		// Social media
		{"fa-facebook", "📘"},
		{"fa-instagram", "📷"},
		{"fa-tiktok", "🎵"},
		{"fa-linkedin", "💼"},
		{"fa-youtube", "📺"},
		{"fa-twitter", "🐦"},
		{"fa-google", "🔍"},
		{"fa-share-alt", "🔗"},

		// Other common
		{"fa-list", "📋"},
		{"fa-list-check", "✅"},
		{"fa-chart-bar", "📊"},
		{"fa-chart-line", "📈"},
		{"fa-toggle-on", "🔛"},
		{"fa-sitemap", "🗺️"},
		{"fa-tag", "🏷️"},
		{"fa-tags", "🏷️"},
		{"fa-link", "🔗"},
		{"fa-external-link-alt", "🔗"},
		{"fa-bolt", "⚡"},
		{"fa-mobile-alt", "📱"},
		{"fa-rocket", "🚀"},
		{"fa-magic", "✨"},
		{"fa-star", "⭐"},
		{"fa-broom", "🧹"},
		{"fa-box-open", "📦"},
		{"fa-undo", "↩️"},
		{"fa-flask", "🧪"},
		{"fa-vial", "🧪"},
		{"fa-ban", "🚫"},
		{"fa-sliders-h", "🎚️"},
		{"fa-exchange-alt", "🔄"},
		{"fa-plug", "🔌"},
		{"fa-door-open", "🚪"},
		{"fa-layer-group", "📚"},
		{"fa-network-wired", "🌐"},
		{"fa-signal", "📶"},
		{"fa-hand-pointer", "👆"},
		{"fa-ellipsis-h", "⋯"},
		{"fa-sort", "⇅"},
		{"fa-sort-numeric-down", "🔢"},
		{"fa-archive", "📦"},
		{"fa-guitar", "🎸"},
		{"fa-home", "🏠"},
		{"fa-sign-out-alt", "🚪"},
		{"fa-circle-notch", "⏳"},
		{"fa-satellite-dish", "📡"},
		{"fa-book", "📖"},
	}
}

// Lookup returns the emoji mapped to class, or "" if the class is unknown.
func (t Table) Lookup(class string) (string, bool) {
	for _, m := range t {
		if m.Class == class {
			return m.Emoji, true
		}
	}
	return "", false
}

// Classes returns the class names in table order.
func (t Table) Classes() []string {
	out := make([]string, len(t))
	for i, m := range t {
		out[i] = m.Class
	}
	return out
}

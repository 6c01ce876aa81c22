package content

import "github.com/zoobzio/capitan"

// Content signals.
var (
	// FallbackUsed is emitted when a client operation serves fallback data.
	FallbackUsed = capitan.NewSignal(
		"content.fallback.used",
		"Client served fallback data",
	)

	// CatalogReplaced is emitted when a watched catalog update is applied.
	CatalogReplaced = capitan.NewSignal(
		"content.catalog.replaced",
		"Fallback catalog replaced",
	)

	// CatalogRejected is emitted when a watched catalog update cannot be
	// decoded or fails validation.
	CatalogRejected = capitan.NewSignal(
		"content.catalog.rejected",
		"Fallback catalog update rejected",
	)
)

// Field keys for content events.
var (
	// KeyOperation is the client operation, e.g. "classes".
	KeyOperation = capitan.NewStringKey("operation")

	// KeyReason is why fallback data was served or an update rejected.
	KeyReason = capitan.NewStringKey("reason")

	// KeyContentType is the codec content type of a catalog update.
	KeyContentType = capitan.NewStringKey("content_type")

	// KeyClasses is the number of classes in an applied catalog.
	KeyClasses = capitan.NewIntKey("classes")
)

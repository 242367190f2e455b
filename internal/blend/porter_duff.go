// Package blend implements the Porter-Duff compositing operators used by
// the mask editor.
//
// All operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Op represents a Porter-Duff compositing operation.
type Op uint8

const (
	// Clear discards the destination. Result: 0.
	Clear Op = iota
	// SourceOver composites source over destination. Result: S + D*(1-Sa).
	// This is the brush's drawing mode.
	SourceOver
	// SourceIn keeps source only where the destination is opaque.
	// Result: S*Da. Used by the exporter's white-flood collapse.
	SourceIn
	// DestinationOut clears destination where the source is opaque.
	// Result: D*(1-Sa). This is the eraser's mode.
	DestinationOut
)

// Func is the signature for compositing operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after compositing.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// OpFunc returns the compositing function for the given operation.
// Returns sourceOver for unknown operations.
func OpFunc(op Op) Func {
	switch op {
	case Clear:
		return clearOp
	case SourceOver:
		return sourceOver
	case SourceIn:
		return sourceIn
	case DestinationOut:
		return destinationOut
	default:
		return sourceOver
	}
}

// clearOp clears the destination to transparent black.
func clearOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

// sourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return clampAdd(sr, mulDiv255(dr, invSa)),
		clampAdd(sg, mulDiv255(dg, invSa)),
		clampAdd(sb, mulDiv255(db, invSa)),
		clampAdd(sa, mulDiv255(da, invSa))
}

// sourceIn keeps source where destination is opaque.
// Formula: S * Da
func sourceIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// destinationOut keeps destination where source is transparent.
// Formula: D * (1 - Sa)
func destinationOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// mulDiv255 multiplies two byte values and divides by 255 with proper
// rounding. Formula: (a * b + 127) / 255.
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// clampAdd adds two byte values with clamping to 255.
func clampAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

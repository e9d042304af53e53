package cdc

// Typed extractors project a Value of the named variant. They signal a
// local programming error with the boolean result rather than an error
// value: a caller that expects a Bool and gets something else has a bug in
// its own code, not a malformed peer message, and the codec never surfaces
// this to the remote peer.

func ExpectNone(v Value) (None, bool)       { x, ok := v.(None); return x, ok }
func ExpectBool(v Value) (Bool, bool)       { x, ok := v.(Bool); return x, ok }
func ExpectInteger(v Value) (Integer, bool) { x, ok := v.(Integer); return x, ok }
func ExpectFloat(v Value) (Float, bool)     { x, ok := v.(Float); return x, ok }
func ExpectString(v Value) (String, bool)   { x, ok := v.(String); return x, ok }
func ExpectList(v Value) (List, bool)       { x, ok := v.(List); return x, ok }
func ExpectMap(v Value) (Map, bool)         { x, ok := v.(Map); return x, ok }
func ExpectSlice(v Value) (Slice, bool)     { x, ok := v.(Slice); return x, ok }
func ExpectItem(v Value) (Item, bool)       { x, ok := v.(Item); return x, ok }
func ExpectIndexable(v Value) (Indexable, bool) { x, ok := v.(Indexable); return x, ok }
func ExpectCommand(v Value) (Command, bool) { x, ok := v.(Command); return x, ok }
func ExpectCallable(v Value) (Callable, bool) { x, ok := v.(Callable); return x, ok }
func ExpectError(v Value) (Error, bool)     { x, ok := v.(Error); return x, ok }
func ExpectTrait(v Value) (Trait, bool)     { x, ok := v.(Trait); return x, ok }
func ExpectObject(v Value) (Object, bool)   { x, ok := v.(Object); return x, ok }
func ExpectArray(v Value) (Array, bool)     { x, ok := v.(Array); return x, ok }
func ExpectPackage(v Value) (Package, bool) { x, ok := v.(Package); return x, ok }
func ExpectVec2d(v Value) (Vec2d, bool)     { x, ok := v.(Vec2d); return x, ok }
func ExpectVec3d(v Value) (Vec3d, bool)     { x, ok := v.(Vec3d); return x, ok }
func ExpectResourceAccess(v Value) (ResourceAccess, bool) {
	x, ok := v.(ResourceAccess)
	return x, ok
}
func ExpectBlob(v Value) (Blob, bool) { x, ok := v.(Blob); return x, ok }

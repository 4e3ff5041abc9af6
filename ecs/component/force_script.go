package component

// ForceScript names a tengo script that drives the entity's acceleration.
// Generation is bumped whenever the source changes so runtimes recompile.
type ForceScript struct {
	Name       string
	Source     []byte
	Generation int
}

var ForceScriptComponent = NewComponent[ForceScript]()

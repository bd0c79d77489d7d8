//go:build !js

package keep

func defaultBackend() Backend { return FileBackend{} }

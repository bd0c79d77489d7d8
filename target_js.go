//go:build js && wasm

package keep

const currentTarget = TargetBrowser

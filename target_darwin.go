//go:build darwin

package keep

const currentTarget = TargetMacOS

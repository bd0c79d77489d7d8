//go:build !unix && !windows && !js

package keep

const currentTarget = TargetOther

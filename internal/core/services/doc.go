// Package services implements the driving ports over the domain and
// the driven ports. Services contain orchestration only; all chart
// arithmetic lives in the domain package.
package services

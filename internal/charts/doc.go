// Package charts renders the six survey figures as standalone HTML
// documents using go-echarts. Each renderer takes the cleaned observation
// table, derives its series through the dataprocessing views and the
// analytics helpers, and writes one file into the configured charts
// directory.
package charts

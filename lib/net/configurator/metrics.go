package configurator

import (
	"sync"
	"time"

	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/Cloud-Foundations/tricorder/go/tricorder/units"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

var (
	bootstrapTimeDistribution *tricorder.CumulativeDistribution
	metricsMutex              sync.Mutex
	gatewayStatus             string
	lastBootstrapOk           bool
	lastBootstrapTime         time.Time
	numRecoverableErrors      uint64
)

func init() {
	latencyBucketer := tricorder.NewGeometricBucketer(1e-3, 10e3)
	bootstrapTimeDistribution = latencyBucketer.NewCumulativeDistribution()
	dir, err := tricorder.RegisterDirectory("netconfig")
	if err != nil {
		panic(err)
	}
	err = dir.RegisterMetric("bootstrap-duration", bootstrapTimeDistribution,
		units.Second, "time taken to bootstrap")
	if err != nil {
		panic(err)
	}
	err = dir.RegisterMetric("num-recoverable-errors",
		func() uint64 {
			metricsMutex.Lock()
			defer metricsMutex.Unlock()
			return numRecoverableErrors
		},
		units.None, "number of recoverable errors")
	if err != nil {
		panic(err)
	}
	err = dir.RegisterMetric("gateway-status",
		func() string {
			metricsMutex.Lock()
			defer metricsMutex.Unlock()
			return gatewayStatus
		},
		units.None, "classification of the route table gateway column")
	if err != nil {
		panic(err)
	}
	err = dir.RegisterMetric("last-bootstrap-ok",
		func() bool {
			metricsMutex.Lock()
			defer metricsMutex.Unlock()
			return lastBootstrapOk
		},
		units.None, "true if the last bootstrap completed")
	if err != nil {
		panic(err)
	}
	err = dir.RegisterMetric("last-bootstrap-time",
		func() time.Time {
			metricsMutex.Lock()
			defer metricsMutex.Unlock()
			return lastBootstrapTime
		},
		units.None, "time of the last bootstrap")
	if err != nil {
		panic(err)
	}
}

func recordBootstrap(result *Result, err error) {
	bootstrapTimeDistribution.Add(result.Duration)
	var status tcpip.GatewayStatus
	if result.Gateway != nil {
		status = result.Gateway.Status
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	gatewayStatus = status.String()
	lastBootstrapOk = err == nil
	lastBootstrapTime = time.Now()
	numRecoverableErrors += uint64(len(result.RecoverableErrors))
}

// Package factory provides a small generic registry used to instantiate
// pluggable modules such as metrics sinks from configuration. A
// module is described by a type string and a map of raw settings; its factory
// decodes the settings into a typed struct and returns the implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[metrics.SnapshotRecorder]()
//	reg.Register("prometheus", func(conf map[string]any) (metrics.SnapshotRecorder, error) {
//	    var c struct{ Namespace string `json:"namespace"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newPromSink(c.Namespace)
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "prometheus", Conf: map[string]any{"namespace": "mapai"}})
package factory

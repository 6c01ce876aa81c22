/*
Package loadz tracks the lifecycle of asynchronous operations: whether a
run is in flight, the error the last failed run recorded, and the last
good value.

# Store

A Store holds the state of a single operation:

	store := loadz.NewStore[[]Class]()
	store.StartLoading()
	classes, err := fetchClasses(ctx)
	if err != nil {
	    store.StopLoading(err) // previous value stays visible
	} else {
	    store.SetValue(classes)
	    store.StopLoading(nil)
	}

Because the value survives a failed run, a consumer can render cached
results next to a fresh error ("showing cached results; refresh failed").

A MultiStore tracks loading and error flags for several keyed operations:

	sections := loadz.NewMultiStore(map[string]bool{"classes": true, "testimonials": true})
	sections.SetLoading("classes", false)
	if sections.IsAnyLoading() {
	    // render spinner
	}

# Fetcher

A Fetcher drives a Store from a producer function:

	classes := loadz.NewFetcher("classes", client.Classes).
	    OnError(func(err error) { log.Print(err) })

	if err := classes.Attach(ctx); err != nil { // starts the initial run
	    return err
	}

	snap := classes.Snapshot()

Run re-invokes the producer on demand; Reset restores the initial value.
Producer failures are absorbed: they are recorded on the store and
handed to OnError, never returned.

Overlapping runs race, and the producer that returns last decides the
stored value. Call SingleFlight to coalesce overlapping runs into one
producer call instead.

# Pipeline Options

Producers can be wrapped with middleware built on pipz:

	loadz.NewFetcher("notes", produceNotes,
	    loadz.WithRetry[[]Note](3),
	    loadz.WithTimeout[[]Note](2*time.Second),
	    loadz.WithFallbackValue(defaultNotes),
	)

# Refresh

RefreshOn re-runs a fetcher whenever a Watcher emits, debounced:

	classes.RefreshOn(ctx, loadz.NewFileWatcher("catalog.yaml"))

# Signals

Fetchers emit capitan signals (RunStarted, RunSucceeded, RunFailed, ...)
with typed fields such as KeyName and KeyError. Hook them for logging.
*/
package loadz

// Package timezone keeps the application timezone used for every timestamp the service writes or renders.
//
//	if err := timezone.Init(cfg.App.Timezone); err != nil { ... }
//	now := timezone.Now()
//	formatted := timezone.Format(room.CreatedAt, time.RFC3339)
//
// Only IANA names are accepted ("UTC", "Europe/Paris", "Asia/Jakarta"). Until Init is called, UTC is used.
package timezone

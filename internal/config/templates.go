package config

import (
	"fmt"
	"os"
)

func Template() string {
	return wirectlTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(wirectlTemplate), 0o600)
}

const wirectlTemplate = `[codec]
initial_capacity = 256
framed = true

[limits]
max_payload_bytes = 8388608
# request body cap for the serve command, raw or hex
max_body_bytes = 33554432

[server]
node = "wirectl"
addr = ":9300"
cors_origins = ["http://localhost:3000"]
# bearer token required on POST /inspect and /encode; empty disables
auth_token = ""

[[messages]]
id = 7
name = "vehicle.spawn"
fields = [
  { name = "entity", type = "uint16" },
  { name = "class", type = "string" },
]

[[messages]]
id = 8
name = "vehicle.state"
fields = [
  { name = "id", type = "uuid" },
  { name = "position", type = "[]float32" },
  { name = "doors", type = "[]bool" },
  { name = "plate", type = "short_string" },
  { name = "fuel", type = "decimal" },
  { name = "updated", type = "time" },
  { name = "uptime", type = "duration" },
]
`

// stationeryctl tareas de operación del back-office: migraciones,
// administradores y datos de demostración.
//
// Uso:
//
//	go run ./cmd/stationeryctl migrate up
//	go run ./cmd/stationeryctl create-admin --email ops@shop.com --password 'S3cret!pass'
//	go run ./cmd/stationeryctl seed --reset
package main

func main() {
	Execute()
}

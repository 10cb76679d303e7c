/*
Package config manages configuration parsing and validation for sheetsplit.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Loads migration settings from a config file
- Layers SHEETSPLIT_* environment overrides on top (with .env support)
- Fills in defaults for workers, retry policy, sharing and classification
- Keeps folder and sheet IDs optional so the CLI can prompt for them

🔄 Flow:
1. Reads configuration from file (format picked by extension)
2. Applies environment variable overrides
3. Validates structural values and fills defaults
4. ValidateRun enforces the IDs once prompting had its chance

🤝 Interfaces:
- Parser: Format-specific parsing
- Config: Type-safe config access

🔍 Example:

	cfg, err := config.Load(ctx, "sheetsplit.yaml")
	if err != nil {
		return err
	}

	// ...prompt the user for anything missing...

	if err := cfg.ValidateRun(); err != nil {
		return err
	}
	pool := cfg.RetryConfig()
*/
package config

// Package manifest loads application definitions from HCL files.
//
// A manifest declares the same model the static API does, as data:
//
//	application "greet" {
//	  description = "Greets people."
//	  version     = "1.2.3"
//	  run         = "Greet"
//
//	  flag "loud" {
//	    short       = "l"
//	    description = "Shout the greeting"
//	  }
//
//	  parameter "lang" {
//	    type        = string
//	    default     = "en"
//	    description = "Language code"
//	  }
//
//	  argument "name" {
//	    required    = true
//	    description = "Who to greet"
//	  }
//
//	  command "wave" {
//	    run         = "Wave"
//	    description = "Wave instead"
//	  }
//	}
//
// The block label of a flag or parameter is its long name; short names
// are opt-in attributes. Definitions may span several files: exactly
// one file carries the application block, and top-level command blocks
// in any file attach to it as additional subcommands.
//
// The Loader implements runtime.Loader, so a loaded definition flows
// through runtime.FromDefinition unchanged.
package manifest

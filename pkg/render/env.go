package render

// Environment is a predefined ESLint environment: a preset of global
// variables that the generated files list disabled.
type Environment struct {
	Name        string
	Description string
}

// Environments returns the environments listed in every generated file,
// in output order.
func Environments() []Environment {
	return []Environment{
		{"browser", "browser global variables"},
		{"node", "Node.js global variables and Node.js scoping."},
		{"commonjs", "CommonJS global variables and CommonJS scoping (use this for browser-only code that uses Browserify/WebPack)."},
		{"shared-node-browser", "Globals common to both Node and Browser."},
		{"es6", "enable all ECMAScript 6 features except for modules (this automatically sets the ecmaVersion parser option to 6)."},
		{"worker", "web workers global variables."},
		{"amd", "defines require() and define() as global variables as per the amd spec"},
		{"mocha", "adds all of the Mocha testing global variables"},
		{"jasmine", "adds all of the Jasmine testing global variables for version 1.3 and 2.0"},
		{"jest", "Jest global variables."},
		{"phantomjs", "PhantomJS global variables"},
		{"protractor", "Protractor global variables"},
		{"qunit", "QUnit global variables."},
		{"jquery", "jQuery global variables"},
		{"prototypejs", "Prototype.js global variables"},
		{"shelljs", "ShellJS global variables"},
		{"meteor", "Meteor global variables."},
		{"mongo", "MongoDB global variables."},
		{"applescript", "AppleScript global variables."},
		{"nashorn", "Java 8 Nashorn global variables."},
		{"serviceworker", "Service Worker global variables."},
		{"atomtest", "Atom test helper globals."},
		{"embertest", "Ember test helper globals."},
		{"webextensions", "WebExtensions globals."},
		{"greasemonkey", "GreaseMonkey globals."},
	}
}

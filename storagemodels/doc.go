/*
Package storagemodels contains the shared parameter and result types used
across DataStore implementations: scan parameters, streaming results, and
streaming options.
*/
package storagemodels

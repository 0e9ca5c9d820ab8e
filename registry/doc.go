/*
Package registry tracks the set of table schemas an application declares.

There are two registration surfaces:

  - Registry: an instance-scoped, name-keyed collection built from the
    configured entity set. The lifecycle manager provisions every schema
    in the Registry during startup.
  - The package-level type index: associates Go entity types with their
    schemas so typed datastores can resolve a schema from the type alone.

Registration is explicit, not annotation-driven: each entity package
exposes a descriptor function (see models.ProductSchema) and the wiring
layer decides which descriptors to register based on configuration.
*/
package registry
